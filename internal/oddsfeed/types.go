// Package oddsfeed consumes the upstream odds/events provider and turns its
// raw bookmaker odds into prop candidates.
package oddsfeed

import "time"

// Market keys the provider uses for player over/under props.
const (
	MarketPlayerPoints   = "player_points"
	MarketPlayerRebounds = "player_rebounds"
	MarketPlayerAssists  = "player_assists"
)

// Outcome sides as labeled by the provider.
const (
	outcomeOver  = "Over"
	outcomeUnder = "Under"
)

// Event identifies an upcoming game on the provider.
type Event struct {
	ID           string    `json:"id"`
	SportKey     string    `json:"sport_key"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
}

// EventOdds is the full odds payload for one event.
type EventOdds struct {
	Event
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// Bookmaker groups one book's markets for an event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is one prop market (e.g. player_points) with its priced outcomes.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single priced side. Name is "Over" or "Under", Description
// carries the player name, Point the posted line, Price the American odds.
type Outcome struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Point       float64 `json:"point"`
}

// statTypeForMarket maps provider market keys to internal stat types.
func statTypeForMarket(key string) (string, bool) {
	switch key {
	case MarketPlayerPoints:
		return "points", true
	case MarketPlayerRebounds:
		return "rebounds", true
	case MarketPlayerAssists:
		return "assists", true
	default:
		return "", false
	}
}
