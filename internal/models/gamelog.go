// Package models defines the core domain types for the props advisor.
package models

import "time"

// GameLogEntry represents a single completed game's box score line for a
// player. Entries are immutable once recorded and are consumed newest first.
type GameLogEntry struct {
	GameID    int       `json:"game_id"`
	GameDate  time.Time `json:"game_date"`
	Minutes   float64   `json:"minutes"`
	Points    int       `json:"points"`
	Rebounds  int       `json:"rebounds"`
	Assists   int       `json:"assists"`
	Steals    int       `json:"steals"`
	Blocks    int       `json:"blocks"`
	Turnovers int       `json:"turnovers"`
	FGM       int       `json:"fgm"`
	FGA       int       `json:"fga"`
	FG3M      int       `json:"fg3m"`
	FG3A      int       `json:"fg3a"`
	FTM       int       `json:"ftm"`
	FTA       int       `json:"fta"`
}
