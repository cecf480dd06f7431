package models

// Stat types supported for player props. An unrecognized stat type is still
// processed but falls back to points-based averages in the feature engine.
const (
	StatPoints   = "points"
	StatRebounds = "rebounds"
	StatAssists  = "assists"
)

// PropCandidate is a single bettable over/under proposition derived from
// market data. Candidates are ephemeral per request and never persisted.
type PropCandidate struct {
	PlayerName string  `json:"player_name"`
	PlayerID   int     `json:"player_id"`
	Team       string  `json:"team"`
	StatType   string  `json:"stat_type"`
	Line       float64 `json:"line"`
	OddsOver   float64 `json:"odds_over"`
	OddsUnder  float64 `json:"odds_under"`
	// Bookmaker is the book offering the best over price; the best under
	// price may come from a different book (BookmakerUnder).
	Bookmaker      string `json:"bookmaker"`
	BookmakerUnder string `json:"bookmaker_under"`
	// BookCount is the number of bookmakers contributing to the consensus line.
	BookCount int `json:"book_count"`
}
