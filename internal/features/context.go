package features

import (
	"math"
	"time"

	"github.com/yourusername/props-advisor/internal/models"
)

// restDays returns the day count from the player's most recent game before
// gameDate to gameDate, rounded up so a partial day counts as a full one.
// With no prior game it returns 0; divisions by rest days are guarded at
// the call sites.
func restDays(logs []models.GameLogEntry, gameDate time.Time) int {
	for _, g := range logs {
		if g.GameDate.Before(gameDate) {
			days := int(math.Ceil(gameDate.Sub(g.GameDate).Hours() / 24.0))
			if days < 0 {
				return 0
			}
			return days
		}
	}
	return 0
}

// gamesWithinDays counts games played in the trailing window of days ending
// at gameDate, exclusive of the target game itself.
func gamesWithinDays(logs []models.GameLogEntry, gameDate time.Time, days int) int {
	cutoff := gameDate.AddDate(0, 0, -days)
	count := 0
	for _, g := range logs {
		if g.GameDate.Before(gameDate) && !g.GameDate.Before(cutoff) {
			count++
		}
	}
	return count
}
