package inference

import "github.com/yourusername/props-advisor/internal/models"

// Tier thresholds on the model's confidence scalar. Both boundaries are
// inclusive on the medium side: exactly 0.10 and exactly 0.15 are medium.
const (
	highThreshold = 0.15
	betThreshold  = 0.10
)

// Tier maps a confidence scalar to its discrete bucket.
func Tier(confidence float64) string {
	switch {
	case confidence > highThreshold:
		return models.TierHigh
	case confidence >= betThreshold:
		return models.TierMedium
	default:
		return models.TierLow
	}
}

// ShouldBet reports whether confidence clears the betting floor. Strictly
// greater than the threshold: a 0.10-confidence prop is tiered medium for
// transparency but never recommended.
func ShouldBet(confidence float64) bool {
	return confidence > betThreshold
}
