// Package repository persists analysis runs and their recommended props
// to PostgreSQL for later review of model performance.
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/props-advisor/internal/analysis"
	"github.com/yourusername/props-advisor/internal/database"
	"github.com/yourusername/props-advisor/internal/models"
)

// PostgresRecommendationRepository implements analysis.Recorder for
// PostgreSQL.
type PostgresRecommendationRepository struct {
	db *database.DB
}

// NewPostgresRecommendationRepository creates a new recommendation repository.
func NewPostgresRecommendationRepository(db *database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

// EnsureSchema creates the history tables when they do not exist yet.
func (r *PostgresRecommendationRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS analysis_runs (
			id UUID PRIMARY KEY,
			sport TEXT NOT NULL,
			event_id TEXT NOT NULL,
			home_team TEXT NOT NULL,
			away_team TEXT NOT NULL,
			game_time TIMESTAMPTZ NOT NULL,
			total_props INT NOT NULL,
			star_props_analyzed INT NOT NULL,
			high_confidence_count INT NOT NULL,
			medium_confidence_count INT NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS recommended_props (
			id UUID PRIMARY KEY,
			run_id UUID NOT NULL REFERENCES analysis_runs(id) ON DELETE CASCADE,
			rank INT NOT NULL,
			player_name TEXT NOT NULL,
			player_id INT NOT NULL,
			team TEXT NOT NULL,
			stat_type TEXT NOT NULL,
			line DOUBLE PRECISION NOT NULL,
			odds_over DOUBLE PRECISION NOT NULL,
			odds_under DOUBLE PRECISION NOT NULL,
			bookmaker TEXT NOT NULL,
			side TEXT NOT NULL,
			probability_over DOUBLE PRECISION NOT NULL,
			probability_under DOUBLE PRECISION NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			confidence_tier TEXT NOT NULL,
			games_used INT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recommended_props_run_id
			ON recommended_props(run_id);
	`
	if _, err := r.db.GetPool().Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure recommendation schema: %w", err)
	}
	return nil
}

// SaveRun persists a finished report and its ranked props atomically.
func (r *PostgresRecommendationRepository) SaveRun(ctx context.Context, report *analysis.Report) error {
	tx, err := r.db.GetPool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	runQuery := `
		INSERT INTO analysis_runs (id, sport, event_id, home_team, away_team, game_time,
		                           total_props, star_props_analyzed, high_confidence_count,
		                           medium_confidence_count, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.Exec(ctx, runQuery,
		report.RunID, report.Sport, report.EventID, report.HomeTeam, report.AwayTeam,
		report.GameTime, report.TotalPropsAvailable, report.StarPlayerPropsAnalyzed,
		report.HighConfidenceCount, report.MediumConfidenceCount, report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis run: %w", err)
	}

	propQuery := `
		INSERT INTO recommended_props (id, run_id, rank, player_name, player_id, team, stat_type,
		                               line, odds_over, odds_under, bookmaker, side,
		                               probability_over, probability_under, confidence,
		                               confidence_tier, games_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	for i, prop := range report.TopProps {
		_, err = tx.Exec(ctx, propQuery,
			uuid.New(), report.RunID, i+1,
			prop.Candidate.PlayerName, prop.Candidate.PlayerID, prop.Candidate.Team,
			prop.Candidate.StatType, prop.Candidate.Line, prop.Candidate.OddsOver,
			prop.Candidate.OddsUnder, prop.Candidate.Bookmaker,
			prop.Prediction.Side, prop.Prediction.ProbabilityOver,
			prop.Prediction.ProbabilityUnder, prop.Prediction.Confidence,
			prop.Prediction.Tier, prop.GamesUsed,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommended prop: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit analysis run: %w", err)
	}
	return nil
}

// GetRun retrieves one persisted run without its props.
func (r *PostgresRecommendationRepository) GetRun(ctx context.Context, runID uuid.UUID) (*analysis.Report, error) {
	query := `
		SELECT id, sport, event_id, home_team, away_team, game_time, total_props,
		       star_props_analyzed, high_confidence_count, medium_confidence_count, generated_at
		FROM analysis_runs WHERE id = $1
	`

	report := &analysis.Report{}
	err := r.db.GetPool().QueryRow(ctx, query, runID).Scan(
		&report.RunID, &report.Sport, &report.EventID, &report.HomeTeam, &report.AwayTeam,
		&report.GameTime, &report.TotalPropsAvailable, &report.StarPlayerPropsAnalyzed,
		&report.HighConfidenceCount, &report.MediumConfidenceCount, &report.GeneratedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}

	return report, nil
}

// RecentRuns lists the most recent persisted runs, newest first.
func (r *PostgresRecommendationRepository) RecentRuns(ctx context.Context, limit int) ([]*analysis.Report, error) {
	query := `
		SELECT id, sport, event_id, home_team, away_team, game_time, total_props,
		       star_props_analyzed, high_confidence_count, medium_confidence_count, generated_at
		FROM analysis_runs
		ORDER BY generated_at DESC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analysis runs: %w", err)
	}
	defer rows.Close()

	var reports []*analysis.Report
	for rows.Next() {
		report := &analysis.Report{}
		err := rows.Scan(
			&report.RunID, &report.Sport, &report.EventID, &report.HomeTeam, &report.AwayTeam,
			&report.GameTime, &report.TotalPropsAvailable, &report.StarPlayerPropsAnalyzed,
			&report.HighConfidenceCount, &report.MediumConfidenceCount, &report.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis run: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis runs: %w", err)
	}

	return reports, nil
}
