package models

// Confidence tiers derived from the model's confidence scalar.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Prediction sides.
const (
	SideOver  = "over"
	SideUnder = "under"
)

// Prediction is the structured output of a single model inference. The
// Confidence field is the model's own scalar and is never recomputed from
// the probabilities on this side of the wire.
type Prediction struct {
	Side             string  `json:"side"`
	ProbabilityOver  float64 `json:"probability_over"`
	ProbabilityUnder float64 `json:"probability_under"`
	Confidence       float64 `json:"confidence"`

	// Derived during response parsing.
	ProbabilityOverPct  string `json:"probability_over_pct"`
	ProbabilityUnderPct string `json:"probability_under_pct"`
	ConfidencePct       string `json:"confidence_pct"`
	Tier                string `json:"tier"`
	ShouldBet           bool   `json:"should_bet"`
}
