package analysis

import (
	"sort"

	"github.com/yourusername/props-advisor/internal/models"
)

// rank filters results down to actionable picks and orders them by model
// confidence, strongest first. Ties break on player name then stat type
// so identical inputs always rank identically.
func rank(results []PropResult, limit int) []PropResult {
	picks := make([]PropResult, 0, len(results))
	for _, r := range results {
		if r.Prediction == nil || !r.Prediction.ShouldBet {
			continue
		}
		if r.Prediction.Tier != models.TierHigh && r.Prediction.Tier != models.TierMedium {
			continue
		}
		picks = append(picks, r)
	}

	sort.Slice(picks, func(i, j int) bool {
		pi, pj := picks[i], picks[j]
		if pi.Prediction.Confidence != pj.Prediction.Confidence {
			return pi.Prediction.Confidence > pj.Prediction.Confidence
		}
		if pi.Candidate.PlayerName != pj.Candidate.PlayerName {
			return pi.Candidate.PlayerName < pj.Candidate.PlayerName
		}
		return pi.Candidate.StatType < pj.Candidate.StatType
	})

	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}
