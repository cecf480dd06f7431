// Package analysis coordinates the full prop recommendation pipeline:
// resolve the event, pull its odds, extract candidates, filter them to
// star players, run each one through feature engineering and the model,
// and rank the survivors into a report.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/props-advisor/internal/features"
	"github.com/yourusername/props-advisor/internal/inference"
	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/metrics"
	"github.com/yourusername/props-advisor/internal/models"
	"github.com/yourusername/props-advisor/internal/oddsfeed"
	"github.com/yourusername/props-advisor/internal/roster"
)

// SportNBA is the only sport the pipeline currently supports.
const SportNBA = "basketball_nba"

const (
	defaultConcurrency  = 4
	defaultTopProps     = 10
	defaultGameLogLimit = 15
)

// OddsProvider resolves events and their prop odds.
type OddsProvider interface {
	FindEvent(ctx context.Context, sport, team1, team2 string, gameDate time.Time) (*oddsfeed.Event, error)
	EventOdds(ctx context.Context, sport, eventID string) (*oddsfeed.EventOdds, error)
}

// GameLogSource supplies recent per-game stat lines for a player,
// newest first. It never fails; an empty slice means no usable data.
type GameLogSource interface {
	GetRecentGames(ctx context.Context, playerID, season, limit int) []models.GameLogEntry
}

// Predictor scores one feature vector.
type Predictor interface {
	Predict(ctx context.Context, vec features.Vector) (*models.Prediction, error)
}

// StarRoster answers whether a player is on either team's star list.
type StarRoster interface {
	Find(homeTeam, awayTeam, playerName string) (roster.Match, bool)
}

// Recorder persists finished reports. Optional; persistence failures
// never fail an analysis run.
type Recorder interface {
	SaveRun(ctx context.Context, report *Report) error
}

// Config tunes the orchestrator. Zero values fall back to defaults.
type Config struct {
	// Concurrency bounds the number of candidates in flight at once.
	Concurrency int
	// TopProps caps the ranked results in the report.
	TopProps int
	// GameLogLimit is how many recent games feed each feature vector.
	GameLogLimit int
}

// Orchestrator runs the analysis pipeline.
type Orchestrator struct {
	cfg      Config
	odds     OddsProvider
	gameLogs GameLogSource
	model    Predictor
	stars    StarRoster
	recorder Recorder
	log      *logrus.Entry
}

// NewOrchestrator wires the pipeline. recorder may be nil.
func NewOrchestrator(cfg Config, odds OddsProvider, gameLogs GameLogSource, model Predictor, stars StarRoster, recorder Recorder, log *logrus.Logger) *Orchestrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.TopProps <= 0 {
		cfg.TopProps = defaultTopProps
	}
	if cfg.GameLogLimit <= 0 {
		cfg.GameLogLimit = defaultGameLogLimit
	}
	return &Orchestrator{
		cfg:      cfg,
		odds:     odds,
		gameLogs: gameLogs,
		model:    model,
		stars:    stars,
		recorder: recorder,
		log:      logger.WithComponent(log, "analysis"),
	}
}

// Analyze runs the full pipeline for one matchup. Individual candidate
// failures are logged and skipped; only pipeline-level problems (unknown
// sport, unresolvable event, no odds, no star players, model
// authentication) surface as errors.
func (o *Orchestrator) Analyze(ctx context.Context, req Request) (*Report, error) {
	if req.Sport != SportNBA {
		return nil, models.ErrUnsupportedSport
	}
	if req.Team1 == "" || req.Team2 == "" {
		return nil, models.ErrMissingTeams
	}

	log := o.log.WithFields(logrus.Fields{
		"sport": req.Sport,
		"team1": req.Team1,
		"team2": req.Team2,
	})
	started := time.Now()

	event, err := o.odds.FindEvent(ctx, req.Sport, req.Team1, req.Team2, req.GameDate)
	if err != nil {
		metrics.RecordAnalysisError("event_not_found")
		return nil, err
	}

	odds, err := o.odds.EventOdds(ctx, req.Sport, event.ID)
	if err != nil {
		metrics.RecordAnalysisError("odds_fetch_failed")
		return nil, err
	}

	candidates := oddsfeed.ExtractCandidates(odds)
	if len(candidates) == 0 {
		metrics.RecordAnalysisError("no_candidates")
		return nil, models.ErrNoOddsData
	}

	starProps := o.filterToStars(event, candidates)
	if len(starProps) == 0 {
		metrics.RecordAnalysisError("no_roster_matches")
		return nil, models.ErrNoRosterMatches
	}

	log.WithFields(logrus.Fields{
		"event_id":    event.ID,
		"total_props": len(candidates),
		"star_props":  len(starProps),
	}).Info("Analyzing prop candidates")

	results, err := o.analyzeAll(ctx, event, starProps)
	if err != nil {
		metrics.RecordAnalysisError("authentication_failed")
		return nil, err
	}

	report := &Report{
		RunID:                   uuid.New(),
		Sport:                   req.Sport,
		EventID:                 event.ID,
		HomeTeam:                event.HomeTeam,
		AwayTeam:                event.AwayTeam,
		GameTime:                event.CommenceTime,
		TotalPropsAvailable:     len(candidates),
		StarPlayerPropsAnalyzed: len(starProps),
		GeneratedAt:             time.Now().UTC(),
	}
	for _, r := range results {
		if r.Prediction == nil {
			continue
		}
		switch r.Prediction.Tier {
		case models.TierHigh:
			report.HighConfidenceCount++
		case models.TierMedium:
			report.MediumConfidenceCount++
		}
	}
	report.TopProps = rank(results, o.cfg.TopProps)

	if o.recorder != nil {
		if err := o.recorder.SaveRun(ctx, report); err != nil {
			log.WithError(err).Warn("Failed to persist analysis run")
		}
	}

	metrics.RecordAnalysisRun(time.Since(started).Seconds(), len(starProps), len(report.TopProps))
	log.WithFields(logrus.Fields{
		"run_id":      report.RunID,
		"top_props":   len(report.TopProps),
		"high_conf":   report.HighConfidenceCount,
		"medium_conf": report.MediumConfidenceCount,
	}).Info("Analysis run complete")

	return report, nil
}

// filterToStars keeps only candidates whose player appears on either
// team's star list, filling in their team and stats-provider id.
func (o *Orchestrator) filterToStars(event *oddsfeed.Event, candidates []models.PropCandidate) []models.PropCandidate {
	var kept []models.PropCandidate
	for _, cand := range candidates {
		match, ok := o.stars.Find(event.HomeTeam, event.AwayTeam, cand.PlayerName)
		if !ok {
			continue
		}
		cand.PlayerID = match.Player.ID
		cand.Team = match.Team
		kept = append(kept, cand)
	}
	return kept
}

// analyzeAll fans candidates out across a bounded worker group. Each
// candidate writes into its own slot, so results keep candidate order
// regardless of completion order. A candidate that fails anywhere in its
// pipeline leaves a nil Prediction and never disturbs its peers — except
// an authentication failure, which no candidate can survive and which
// cancels the whole group.
func (o *Orchestrator) analyzeAll(ctx context.Context, event *oddsfeed.Event, candidates []models.PropCandidate) ([]PropResult, error) {
	season := models.SeasonForDate(event.CommenceTime)
	results := make([]PropResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Concurrency)
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			result, err := o.analyzeOne(ctx, event, season, cand)
			results[i] = result
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (o *Orchestrator) analyzeOne(ctx context.Context, event *oddsfeed.Event, season int, cand models.PropCandidate) (PropResult, error) {
	result := PropResult{Candidate: cand}

	log := o.log.WithFields(logrus.Fields{
		"player":    cand.PlayerName,
		"stat_type": cand.StatType,
		"line":      cand.Line,
	})

	logs := o.gameLogs.GetRecentGames(ctx, cand.PlayerID, season, o.cfg.GameLogLimit)
	if len(logs) == 0 {
		log.Warn("No recent game logs, skipping candidate")
		return result, nil
	}
	result.GamesUsed = len(logs)

	vec := features.Compute(features.Inputs{
		GameLogs:  logs,
		StatType:  cand.StatType,
		HomeTeam:  event.HomeTeam,
		AwayTeam:  event.AwayTeam,
		IsHome:    cand.Team == event.HomeTeam,
		GameDate:  event.CommenceTime,
		Line:      cand.Line,
		OddsOver:  cand.OddsOver,
		OddsUnder: cand.OddsUnder,
		Bookmaker: cand.Bookmaker,
	})

	pred, err := o.model.Predict(ctx, vec)
	if err != nil {
		if errors.Is(err, inference.ErrAuthenticationFailed) {
			return result, err
		}
		log.WithError(err).Warn("Prediction failed, skipping candidate")
		return result, nil
	}
	result.Prediction = pred

	return result, nil
}
