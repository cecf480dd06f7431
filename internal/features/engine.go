package features

import (
	"math"
	"time"

	"github.com/yourusername/props-advisor/internal/models"
	"github.com/yourusername/props-advisor/internal/oddsmath"
)

// Window sizes for the short and long trailing stat windows.
const (
	ShortWindow = 3
	LongWindow  = 10
)

// efficiencyStabilityBand is the maximum gap between short- and long-window
// field goal percentage for a player to count as efficiency-stable.
const efficiencyStabilityBand = 0.05

// Inputs carries everything Compute needs. GameLogs must be ordered newest
// first, as returned by the game-log store.
type Inputs struct {
	GameLogs  []models.GameLogEntry
	StatType  string
	HomeTeam  string
	AwayTeam  string
	IsHome    bool
	GameDate  time.Time
	Line      float64
	OddsOver  float64
	OddsUnder float64
	Bookmaker string
}

// Compute derives the full 88-key feature vector. It is a pure function:
// identical inputs always produce an identical vector, and every key is
// present regardless of input edge cases (empty logs, zero-attempt
// shooting splits, unpriced odds).
func Compute(in Inputs) Vector {
	l3 := window(in.GameLogs, ShortWindow)
	l10 := window(in.GameLogs, LongWindow)

	rest := restDays(in.GameLogs, in.GameDate)
	last7 := gamesWithinDays(in.GameLogs, in.GameDate, 7)
	isHome := boolToFloat(in.IsHome)
	isB2B := boolToFloat(rest == 1)

	v := make(Vector, NumKeys)

	// Categorical identifiers
	v["STAT_TYPE"] = in.StatType
	v["HOME_TEAM"] = in.HomeTeam
	v["AWAY_TEAM"] = in.AwayTeam
	v["BOOKMAKER"] = in.Bookmaker
	v["SEASON"] = models.SeasonLabel(models.SeasonForDate(in.GameDate))

	// Temporal
	v["GAME_YEAR"] = float64(in.GameDate.Year())
	v["GAME_MONTH"] = float64(in.GameDate.Month())
	v["GAME_DAY_OF_WEEK"] = float64(in.GameDate.Weekday())

	putWindow(v, "L3", l3)
	putWindow(v, "L10", l10)
	v["L10_PTS_STD"] = l10.PtsStd
	v["L10_REB_STD"] = l10.RebStd
	v["L10_AST_STD"] = l10.AstStd

	// Game context
	v["IS_HOME"] = isHome
	v["REST_DAYS"] = float64(rest)
	v["IS_BACK_TO_BACK"] = isB2B
	v["GAMES_LAST_7D"] = float64(last7)
	minutesTrend := l3.Min - l10.Min
	v["MINUTES_TREND"] = minutesTrend

	// Advanced metrics
	scoringEfficiency := safeDivide(l3.Pts, l3.FGA, 0)
	// A turnover-free window leaves the raw assist count as the ratio
	astToRatio := safeDivide(l3.Ast, l3.Tov, l3.Ast)
	usageRate := safeDivide(l3.FGA+l3.Tov, l3.Min, 0)
	ptsTrend := l3.Pts - l10.Pts

	v["SCORING_EFFICIENCY"] = scoringEfficiency
	v["AST_TO_RATIO"] = astToRatio
	v["REB_RATE"] = safeDivide(l3.Reb, l3.Min, 0)
	v["USAGE_RATE"] = usageRate
	v["PTS_TREND"] = ptsTrend
	v["REB_TREND"] = l3.Reb - l10.Reb
	v["AST_TREND"] = l3.Ast - l10.Ast
	v["PTS_CONSISTENCY"] = safeDivide(l10.PtsStd, l10.Pts, 0)
	v["REB_CONSISTENCY"] = safeDivide(l10.RebStd, l10.Reb, 0)
	v["AST_CONSISTENCY"] = safeDivide(l10.AstStd, l10.Ast, 0)
	v["TREND_ACCELERATION"] = safeDivide(ptsTrend, math.Max(float64(rest), 1), ptsTrend)
	v["EFFICIENCY_STABILITY"] = boolToFloat(math.Abs(l3.FGPct-l10.FGPct) < efficiencyStabilityBand)

	// Interaction terms
	v["HOME_X_L3_PTS"] = isHome * l3.Pts
	v["HOME_X_L3_REB"] = isHome * l3.Reb
	v["B2B_X_L3_MIN"] = isB2B * l3.Min
	v["B2B_X_L3_PTS"] = isB2B * l3.Pts
	v["REST_X_L3_PTS"] = float64(rest) * l3.Pts
	v["USAGE_X_EFFICIENCY"] = usageRate * scoringEfficiency

	// Composite indices
	v["LOAD_INTENSITY"] = float64(last7) * l3.Min
	v["SHOOTING_VOLUME"] = l3.FGA + l3.FG3A
	v["REB_INTENSITY"] = l3.Reb * l3.Min / 36.0
	v["PLAYMAKING_EFFICIENCY"] = l3.Ast * astToRatio
	v["THREE_POINT_THREAT"] = l3.FG3A * l3.FG3Pct
	v["DEFENSIVE_IMPACT"] = l3.Stl + l3.Blk
	v["PTS_VOLATILITY"] = l10.PtsStd * safeDivide(l3.Pts, l10.Pts, 1)
	v["MINUTES_STABILITY"] = safeDivide(l3.Min, l10.Min, 1)

	// Short/long ratios; 1 means no deviation detectable
	v["PTS_SHORT_LONG_RATIO"] = safeDivide(l3.Pts, l10.Pts, 1)
	v["REB_SHORT_LONG_RATIO"] = safeDivide(l3.Reb, l10.Reb, 1)

	putMarket(v, in, l3, l10)

	return v
}

// putWindow writes the aggregate keys shared by both window sizes.
func putWindow(v Vector, prefix string, ws windowStats) {
	v[prefix+"_PTS"] = ws.Pts
	v[prefix+"_REB"] = ws.Reb
	v[prefix+"_AST"] = ws.Ast
	v[prefix+"_MIN"] = ws.Min
	v[prefix+"_FG_PCT"] = ws.FGPct
	v[prefix+"_FG3_PCT"] = ws.FG3Pct
	v[prefix+"_STL"] = ws.Stl
	v[prefix+"_BLK"] = ws.Blk
	v[prefix+"_TOV"] = ws.Tov
	v[prefix+"_FGM"] = ws.FGM
	v[prefix+"_FGA"] = ws.FGA
	v[prefix+"_FG3M"] = ws.FG3M
	v[prefix+"_FG3A"] = ws.FG3A
	v[prefix+"_GAMES"] = float64(ws.Games)
}

// putMarket writes the betting-market derived features.
func putMarket(v Vector, in Inputs, l3, l10 windowStats) {
	probOver := oddsmath.ImpliedProbability(in.OddsOver)
	probUnder := oddsmath.ImpliedProbability(in.OddsUnder)

	v["LINE"] = in.Line
	v["ODDS_OVER"] = in.OddsOver
	v["ODDS_UNDER"] = in.OddsUnder
	v["IMPLIED_PROB_OVER"] = probOver
	v["IMPLIED_PROB_UNDER"] = probUnder
	v["IMPLIED_PROB_SPREAD"] = oddsmath.ImpliedProbabilitySpread(in.OddsOver, in.OddsUnder)
	v["ODDS_SPREAD"] = in.OddsOver - in.OddsUnder
	v["MARKET_CONFIDENCE"] = math.Abs(probOver - 0.5)

	v["PTS_VS_LINE"] = l3.Pts - in.Line
	v["REB_VS_LINE"] = l3.Reb - in.Line
	v["AST_VS_LINE"] = l3.Ast - in.Line
	v["LINE_DIFFICULTY_PTS"] = safeDivide(in.Line, l10.Pts, 0)
	v["LINE_DIFFICULTY_REB"] = safeDivide(in.Line, l10.Reb, 0)
	v["LINE_DIFFICULTY_AST"] = safeDivide(in.Line, l10.Ast, 0)

	edge := shortAverageFor(in.StatType, l3) - in.Line
	v["EDGE_X_PROB_OVER"] = edge * probOver
	v["EDGE_X_PROB_UNDER"] = edge * probUnder
}

// shortAverageFor selects the short-window average matching the predicted
// stat type. Unrecognized stat types fall back to the points average.
func shortAverageFor(statType string, ws windowStats) float64 {
	switch statType {
	case models.StatRebounds:
		return ws.Reb
	case models.StatAssists:
		return ws.Ast
	case models.StatPoints:
		return ws.Pts
	default:
		return ws.Pts
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
