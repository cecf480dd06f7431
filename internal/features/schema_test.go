package features

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/models"
)

func TestSchemaSize(t *testing.T) {
	assert.Len(t, Keys(), NumKeys)
}

func TestSchemaHasNoDuplicateKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Keys() {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestComputeEmptyLogsProducesFullSchema(t *testing.T) {
	v := Compute(Inputs{
		StatType:  models.StatPoints,
		HomeTeam:  "LAL",
		AwayTeam:  "BOS",
		IsHome:    true,
		GameDate:  time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC),
		Line:      25.5,
		OddsOver:  -110,
		OddsUnder: -110,
		Bookmaker: "draftkings",
	})

	assertSchemaComplete(t, v)
	assert.Equal(t, 0.0, v["L3_GAMES"])
	assert.Equal(t, 0.0, v["L10_GAMES"])
	// Ratios signal "no deviation detectable" when the denominator is empty
	assert.Equal(t, 1.0, v["PTS_SHORT_LONG_RATIO"])
	assert.Equal(t, 1.0, v["MINUTES_STABILITY"])
}

func TestComputeZeroOddsProducesFullSchema(t *testing.T) {
	v := Compute(Inputs{
		StatType: models.StatRebounds,
		GameDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	assertSchemaComplete(t, v)
	assert.Equal(t, 0.5, v["IMPLIED_PROB_OVER"])
}

// assertSchemaComplete checks the exact-88-keys invariant: no key missing,
// no key extra, categoricals as strings, everything else a finite float64.
func assertSchemaComplete(t *testing.T, v Vector) {
	t.Helper()
	require.Len(t, v, NumKeys)
	for _, key := range Keys() {
		val, ok := v[key]
		require.True(t, ok, "missing key %s", key)

		if IsCategorical(key) {
			_, isString := val.(string)
			assert.True(t, isString, "key %s should be a string", key)
			continue
		}

		f, isFloat := val.(float64)
		require.True(t, isFloat, "key %s should be a float64", key)
		assert.False(t, math.IsNaN(f), "key %s is NaN", key)
		assert.False(t, math.IsInf(f, 0), "key %s is infinite", key)
	}
}
