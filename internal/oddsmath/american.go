// Package oddsmath converts between American betting odds and probabilities.
package oddsmath

import "math"

// ImpliedProbability converts American odds to the probability implied by
// the price, bookmaker margin included.
// Negative odds: |odds| / (|odds| + 100); -110 → 0.5238
// Positive odds: 100 / (odds + 100);      +120 → 0.4545
// Zero odds carry no information and map to 0.5.
func ImpliedProbability(american float64) float64 {
	if american == 0 {
		return 0.5
	}
	if american < 0 {
		abs := math.Abs(american)
		return abs / (abs + 100.0)
	}
	return 100.0 / (american + 100.0)
}

// ImpliedProbabilitySpread returns the gap between the over and under
// implied probabilities. A wide spread marks a lopsided market.
func ImpliedProbabilitySpread(oddsOver, oddsUnder float64) float64 {
	return ImpliedProbability(oddsOver) - ImpliedProbability(oddsUnder)
}
