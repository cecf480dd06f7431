package features

import (
	"math"

	"github.com/yourusername/props-advisor/internal/models"
)

// windowStats holds per-game averages over a trailing window of game logs.
// Shooting percentages are computed as summed makes over summed attempts,
// not as an average of per-game percentages, which skews small samples.
type windowStats struct {
	Games int

	Pts  float64
	Reb  float64
	Ast  float64
	Min  float64
	Stl  float64
	Blk  float64
	Tov  float64
	FGM  float64
	FGA  float64
	FG3M float64
	FG3A float64

	FGPct  float64
	FG3Pct float64

	// Population standard deviation over the per-game values.
	PtsStd float64
	RebStd float64
	AstStd float64
}

// window aggregates the newest-first logs over a prefix of size.
// A zero-length window yields all-zero stats.
func window(logs []models.GameLogEntry, size int) windowStats {
	n := size
	if len(logs) < n {
		n = len(logs)
	}
	var ws windowStats
	if n == 0 {
		return ws
	}
	ws.Games = n

	var pts, reb, ast []float64
	var fgm, fga, fg3m, fg3a int
	for _, g := range logs[:n] {
		ws.Pts += float64(g.Points)
		ws.Reb += float64(g.Rebounds)
		ws.Ast += float64(g.Assists)
		ws.Min += g.Minutes
		ws.Stl += float64(g.Steals)
		ws.Blk += float64(g.Blocks)
		ws.Tov += float64(g.Turnovers)
		fgm += g.FGM
		fga += g.FGA
		fg3m += g.FG3M
		fg3a += g.FG3A

		pts = append(pts, float64(g.Points))
		reb = append(reb, float64(g.Rebounds))
		ast = append(ast, float64(g.Assists))
	}

	fn := float64(n)
	ws.Pts /= fn
	ws.Reb /= fn
	ws.Ast /= fn
	ws.Min /= fn
	ws.Stl /= fn
	ws.Blk /= fn
	ws.Tov /= fn
	ws.FGM = float64(fgm) / fn
	ws.FGA = float64(fga) / fn
	ws.FG3M = float64(fg3m) / fn
	ws.FG3A = float64(fg3a) / fn

	if fga > 0 {
		ws.FGPct = float64(fgm) / float64(fga)
	}
	if fg3a > 0 {
		ws.FG3Pct = float64(fg3m) / float64(fg3a)
	}

	ws.PtsStd = populationStdDev(pts)
	ws.RebStd = populationStdDev(reb)
	ws.AstStd = populationStdDev(ast)

	return ws
}

// populationStdDev returns the population (not sample) standard deviation.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// safeDivide returns numerator/denominator, or fallback when the
// denominator is zero.
func safeDivide(numerator, denominator, fallback float64) float64 {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}
