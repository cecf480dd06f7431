package api

import (
	"time"

	"github.com/yourusername/props-advisor/internal/analysis"
)

// AnalyzeRequest is the body of POST /api/v1/props/analyze. Teams may be
// given in either order; GameDate (YYYY-MM-DD) is optional and pins event
// resolution to one calendar day.
type AnalyzeRequest struct {
	Sport    string `json:"sport" validate:"required,oneof=basketball_nba"`
	Team1    string `json:"team1" validate:"required,min=3"`
	Team2    string `json:"team2" validate:"required,min=3"`
	GameDate string `json:"gameDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// TeamsResponse names both sides of the analyzed matchup.
type TeamsResponse struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// PropResponse is one ranked recommendation.
type PropResponse struct {
	PlayerName        string  `json:"playerName"`
	Team              string  `json:"team"`
	StatType          string  `json:"statType"`
	Line              float64 `json:"line"`
	Prediction        string  `json:"prediction"`
	ProbabilityOver   float64 `json:"probabilityOver"`
	ProbabilityUnder  float64 `json:"probabilityUnder"`
	Confidence        float64 `json:"confidence"`
	ConfidencePercent string  `json:"confidencePercent"`
	ConfidenceTier    string  `json:"confidenceTier"`
	OddsOver          float64 `json:"oddsOver"`
	OddsUnder         float64 `json:"oddsUnder"`
	Bookmaker         string  `json:"bookmaker"`
	GamesUsed         int     `json:"gamesUsed"`
}

// AnalyzeResponse is the success payload of POST /api/v1/props/analyze.
type AnalyzeResponse struct {
	Success                 bool           `json:"success"`
	RunID                   string         `json:"runId"`
	Sport                   string         `json:"sport"`
	EventID                 string         `json:"eventId"`
	Teams                   TeamsResponse  `json:"teams"`
	GameTime                time.Time      `json:"gameTime"`
	TotalPropsAvailable     int            `json:"totalPropsAvailable"`
	StarPlayerPropsAnalyzed int            `json:"starPlayerPropsAnalyzed"`
	HighConfidenceCount     int            `json:"highConfidenceCount"`
	MediumConfidenceCount   int            `json:"mediumConfidenceCount"`
	TopProps                []PropResponse `json:"topProps"`
	Timestamp               time.Time      `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// newAnalyzeResponse flattens a report into the wire shape.
func newAnalyzeResponse(report *analysis.Report) AnalyzeResponse {
	resp := AnalyzeResponse{
		Success:                 true,
		RunID:                   report.RunID.String(),
		Sport:                   report.Sport,
		EventID:                 report.EventID,
		Teams:                   TeamsResponse{Home: report.HomeTeam, Away: report.AwayTeam},
		GameTime:                report.GameTime,
		TotalPropsAvailable:     report.TotalPropsAvailable,
		StarPlayerPropsAnalyzed: report.StarPlayerPropsAnalyzed,
		HighConfidenceCount:     report.HighConfidenceCount,
		MediumConfidenceCount:   report.MediumConfidenceCount,
		TopProps:                make([]PropResponse, 0, len(report.TopProps)),
		Timestamp:               report.GeneratedAt,
	}
	for _, prop := range report.TopProps {
		resp.TopProps = append(resp.TopProps, PropResponse{
			PlayerName:        prop.Candidate.PlayerName,
			Team:              prop.Candidate.Team,
			StatType:          prop.Candidate.StatType,
			Line:              prop.Candidate.Line,
			Prediction:        prop.Prediction.Side,
			ProbabilityOver:   prop.Prediction.ProbabilityOver,
			ProbabilityUnder:  prop.Prediction.ProbabilityUnder,
			Confidence:        prop.Prediction.Confidence,
			ConfidencePercent: prop.Prediction.ConfidencePct,
			ConfidenceTier:    prop.Prediction.Tier,
			OddsOver:          prop.Candidate.OddsOver,
			OddsUnder:         prop.Candidate.OddsUnder,
			Bookmaker:         prop.Candidate.Bookmaker,
			GamesUsed:         prop.GamesUsed,
		})
	}
	return resp
}
