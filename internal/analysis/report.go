package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/props-advisor/internal/models"
)

// Request asks for a full prop analysis of one upcoming game. Team names
// are matched loosely against the odds feed, so "Lakers" resolves to
// "Los Angeles Lakers". Teams may arrive in either order; the resolved
// event decides which side is home. A non-zero GameDate restricts event
// resolution to that calendar day.
type Request struct {
	Sport    string
	Team1    string
	Team2    string
	GameDate time.Time
}

// PropResult pairs one analyzed candidate with its model prediction.
type PropResult struct {
	Candidate  models.PropCandidate `json:"candidate"`
	Prediction *models.Prediction   `json:"prediction"`
	// GamesUsed is how many recent game logs fed the feature vector.
	GamesUsed int `json:"games_used"`
}

// Report is the outcome of one analysis run.
type Report struct {
	RunID    uuid.UUID `json:"run_id"`
	Sport    string    `json:"sport"`
	EventID  string    `json:"event_id"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	GameTime time.Time `json:"game_time"`

	// TotalPropsAvailable counts every candidate the market offered;
	// StarPlayerPropsAnalyzed counts the subset that survived the
	// roster filter and was sent through the pipeline.
	TotalPropsAvailable     int `json:"total_props_available"`
	StarPlayerPropsAnalyzed int `json:"star_player_props_analyzed"`
	HighConfidenceCount     int `json:"high_confidence_count"`
	MediumConfidenceCount   int `json:"medium_confidence_count"`

	TopProps    []PropResult `json:"top_props"`
	GeneratedAt time.Time    `json:"generated_at"`
}
