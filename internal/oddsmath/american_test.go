package oddsmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american float64
		want     float64
	}{
		{"Favorite -110", -110, 0.5238},
		{"Heavy favorite -200", -200, 0.6667},
		{"Even odds +100", 100, 0.50},
		{"Underdog +120", 120, 0.4545},
		{"Underdog +150", 150, 0.40},
		{"Heavy underdog +300", 300, 0.25},
		{"Zero odds fall back to coin flip", 0, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpliedProbability(tt.american)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestImpliedProbabilityBounds(t *testing.T) {
	// Any priced odds must imply a probability strictly inside (0, 1)
	for _, odds := range []float64{-100000, -110, -101, 100, 101, 110, 100000} {
		p := ImpliedProbability(odds)
		assert.Greater(t, p, 0.0, "odds %v", odds)
		assert.Less(t, p, 1.0, "odds %v", odds)
	}
}

func TestImpliedProbabilitySpread(t *testing.T) {
	spread := ImpliedProbabilitySpread(-110, -110)
	assert.InDelta(t, 0.0, spread, 1e-9)

	spread = ImpliedProbabilitySpread(-150, 130)
	assert.Greater(t, spread, 0.0)
}
