// Package features converts a player's game logs, game context, and market
// line into the fixed-schema numeric vector the hosted classifier expects.
package features

// Vector is the feature payload sent to the model. Exactly the keys from
// Keys() are present; categorical keys hold strings, every other key holds a
// finite float64. The model matches fields by name, so ordering is
// irrelevant on the wire.
type Vector map[string]interface{}

// schemaKeys is the canonical 88-key schema, grouped the way the model was
// trained. Both the engine and the schema tests are driven from this slice.
var schemaKeys = []string{
	// Categorical identifiers
	"STAT_TYPE",
	"HOME_TEAM",
	"AWAY_TEAM",
	"BOOKMAKER",
	"SEASON",

	// Temporal
	"GAME_YEAR",
	"GAME_MONTH",
	"GAME_DAY_OF_WEEK",

	// Last-3-game averages
	"L3_PTS",
	"L3_REB",
	"L3_AST",
	"L3_MIN",
	"L3_FG_PCT",
	"L3_FG3_PCT",
	"L3_STL",
	"L3_BLK",
	"L3_TOV",
	"L3_FGM",
	"L3_FGA",
	"L3_FG3M",
	"L3_FG3A",
	"L3_GAMES",

	// Last-10-game averages and volatility
	"L10_PTS",
	"L10_REB",
	"L10_AST",
	"L10_MIN",
	"L10_FG_PCT",
	"L10_FG3_PCT",
	"L10_STL",
	"L10_BLK",
	"L10_TOV",
	"L10_FGM",
	"L10_FGA",
	"L10_FG3M",
	"L10_FG3A",
	"L10_GAMES",
	"L10_PTS_STD",
	"L10_REB_STD",
	"L10_AST_STD",

	// Game context
	"IS_HOME",
	"REST_DAYS",
	"IS_BACK_TO_BACK",
	"GAMES_LAST_7D",
	"MINUTES_TREND",

	// Advanced metrics
	"SCORING_EFFICIENCY",
	"AST_TO_RATIO",
	"REB_RATE",
	"USAGE_RATE",
	"PTS_TREND",
	"REB_TREND",
	"AST_TREND",
	"PTS_CONSISTENCY",
	"REB_CONSISTENCY",
	"AST_CONSISTENCY",
	"TREND_ACCELERATION",
	"EFFICIENCY_STABILITY",

	// Interaction terms
	"HOME_X_L3_PTS",
	"HOME_X_L3_REB",
	"B2B_X_L3_MIN",
	"B2B_X_L3_PTS",
	"REST_X_L3_PTS",
	"USAGE_X_EFFICIENCY",

	// Composite indices
	"LOAD_INTENSITY",
	"SHOOTING_VOLUME",
	"REB_INTENSITY",
	"PLAYMAKING_EFFICIENCY",
	"THREE_POINT_THREAT",
	"DEFENSIVE_IMPACT",
	"PTS_VOLATILITY",
	"MINUTES_STABILITY",

	// Short/long window ratios
	"PTS_SHORT_LONG_RATIO",
	"REB_SHORT_LONG_RATIO",

	// Market features
	"LINE",
	"ODDS_OVER",
	"ODDS_UNDER",
	"IMPLIED_PROB_OVER",
	"IMPLIED_PROB_UNDER",
	"IMPLIED_PROB_SPREAD",
	"ODDS_SPREAD",
	"MARKET_CONFIDENCE",
	"PTS_VS_LINE",
	"REB_VS_LINE",
	"AST_VS_LINE",
	"LINE_DIFFICULTY_PTS",
	"LINE_DIFFICULTY_REB",
	"LINE_DIFFICULTY_AST",
	"EDGE_X_PROB_OVER",
	"EDGE_X_PROB_UNDER",
}

var categoricalKeys = map[string]bool{
	"STAT_TYPE": true,
	"HOME_TEAM": true,
	"AWAY_TEAM": true,
	"BOOKMAKER": true,
	"SEASON":    true,
}

// Keys returns the canonical feature schema in declaration order.
func Keys() []string {
	out := make([]string, len(schemaKeys))
	copy(out, schemaKeys)
	return out
}

// IsCategorical reports whether key carries a string value.
func IsCategorical(key string) bool {
	return categoricalKeys[key]
}

// NumKeys is the fixed size of the feature schema.
const NumKeys = 88
