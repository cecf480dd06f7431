package models

import (
	"fmt"
	"time"
)

// SeasonForDate returns the start year of the season a date belongs to.
// A season spans two calendar years with an October cutover: October through
// December belong to the season starting that year, January through
// September to the season that started the prior year.
func SeasonForDate(t time.Time) int {
	if t.Month() >= time.October {
		return t.Year()
	}
	return t.Year() - 1
}

// SeasonLabel formats a season start year as the conventional two-year
// label, e.g. 2025 → "2025-26".
func SeasonLabel(season int) string {
	return fmt.Sprintf("%d-%02d", season, (season+1)%100)
}
