package oddsfeed

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yourusername/props-advisor/internal/models"
)

// propKey identifies a unique (player, stat) proposition across bookmakers.
type propKey struct {
	player string
	stat   string
}

// bookQuote is one bookmaker's pricing of a prop pair.
type bookQuote struct {
	bookmaker string
	line      float64
	oddsOver  float64
	oddsUnder float64
	hasOver   bool
	hasUnder  bool
}

// ExtractCandidates groups the event's raw odds into prop candidates. Only
// (player, stat) pairs with both sides priced by at least one common
// bookmaker survive. The consensus line is the mean of every bookmaker's
// posted line for the pair; best over and under prices are taken
// independently across books.
func ExtractCandidates(odds *EventOdds) []models.PropCandidate {
	quotes := make(map[propKey]map[string]*bookQuote)
	displayName := make(map[propKey]string)

	for _, book := range odds.Bookmakers {
		for _, market := range book.Markets {
			statType, ok := statTypeForMarket(market.Key)
			if !ok {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Description == "" || outcome.Price == 0 {
					continue
				}
				key := propKey{player: normalize(outcome.Description), stat: statType}
				if _, ok := quotes[key]; !ok {
					quotes[key] = make(map[string]*bookQuote)
					displayName[key] = outcome.Description
				}
				q, ok := quotes[key][book.Key]
				if !ok {
					q = &bookQuote{bookmaker: book.Key, line: outcome.Point}
					quotes[key][book.Key] = q
				}
				switch outcome.Name {
				case outcomeOver:
					q.oddsOver = outcome.Price
					q.hasOver = true
					q.line = outcome.Point
				case outcomeUnder:
					q.oddsUnder = outcome.Price
					q.hasUnder = true
				}
			}
		}
	}

	var candidates []models.PropCandidate
	for key, books := range quotes {
		paired := false
		var lines []decimal.Decimal
		var bestOver, bestUnder float64
		var bestOverBook, bestUnderBook string

		for _, q := range books {
			if q.hasOver && q.hasUnder {
				paired = true
				lines = append(lines, decimal.NewFromFloat(q.line))
			}
			if q.hasOver && (bestOverBook == "" || q.oddsOver > bestOver) {
				bestOver = q.oddsOver
				bestOverBook = q.bookmaker
			}
			if q.hasUnder && (bestUnderBook == "" || q.oddsUnder > bestUnder) {
				bestUnder = q.oddsUnder
				bestUnderBook = q.bookmaker
			}
		}
		if !paired {
			continue
		}

		consensus, _ := decimal.Avg(lines[0], lines[1:]...).Float64()

		candidates = append(candidates, models.PropCandidate{
			PlayerName:     displayName[key],
			StatType:       key.stat,
			Line:           consensus,
			OddsOver:       bestOver,
			OddsUnder:      bestUnder,
			Bookmaker:      bestOverBook,
			BookmakerUnder: bestUnderBook,
			BookCount:      len(lines),
		})
	}

	// Map iteration order is random; keep output deterministic
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].PlayerName != candidates[j].PlayerName {
			return candidates[i].PlayerName < candidates[j].PlayerName
		}
		return candidates[i].StatType < candidates[j].StatType
	})

	return candidates
}
