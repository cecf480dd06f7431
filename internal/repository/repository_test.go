package repository

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/analysis"
	"github.com/yourusername/props-advisor/internal/database"
	"github.com/yourusername/props-advisor/internal/models"
)

// setupTestDB connects to the database named by PROPS_ADVISOR_TEST_DB_*
// env vars, or skips the test when none are set.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	host := os.Getenv("PROPS_ADVISOR_TEST_DB_HOST")
	if host == "" {
		t.Skip("Integration test - requires database setup")
	}
	port, _ := strconv.Atoi(os.Getenv("PROPS_ADVISOR_TEST_DB_PORT"))
	if port == 0 {
		port = 5432
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := database.NewDB(ctx, database.Config{
		Host:     host,
		Port:     port,
		User:     os.Getenv("PROPS_ADVISOR_TEST_DB_USER"),
		Password: os.Getenv("PROPS_ADVISOR_TEST_DB_PASSWORD"),
		Name:     os.Getenv("PROPS_ADVISOR_TEST_DB_NAME"),
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

func sampleReport() *analysis.Report {
	return &analysis.Report{
		RunID:                   uuid.New(),
		Sport:                   analysis.SportNBA,
		EventID:                 "evt-test",
		HomeTeam:                "Los Angeles Lakers",
		AwayTeam:                "Denver Nuggets",
		GameTime:                time.Now().Add(6 * time.Hour).UTC().Truncate(time.Microsecond),
		TotalPropsAvailable:     12,
		StarPlayerPropsAnalyzed: 4,
		HighConfidenceCount:     1,
		MediumConfidenceCount:   2,
		GeneratedAt:             time.Now().UTC().Truncate(time.Microsecond),
		TopProps: []analysis.PropResult{
			{
				Candidate: models.PropCandidate{
					PlayerName: "LeBron James",
					PlayerID:   237,
					Team:       "Los Angeles Lakers",
					StatType:   models.StatPoints,
					Line:       28.5,
					OddsOver:   -110,
					OddsUnder:  -110,
					Bookmaker:  "draftkings",
				},
				Prediction: &models.Prediction{
					Side:             models.SideUnder,
					ProbabilityOver:  0.45,
					ProbabilityUnder: 0.55,
					Confidence:       0.12,
					Tier:             models.TierMedium,
					ShouldBet:        true,
				},
				GamesUsed: 10,
			},
		},
	}
}

func TestSaveAndGetRun(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresRecommendationRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, repo.EnsureSchema(ctx))

	report := sampleReport()
	require.NoError(t, repo.SaveRun(ctx, report))

	got, err := repo.GetRun(ctx, report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report.RunID, got.RunID)
	assert.Equal(t, report.EventID, got.EventID)
	assert.Equal(t, report.HighConfidenceCount, got.HighConfidenceCount)
}

func TestGetRunNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresRecommendationRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, repo.EnsureSchema(ctx))

	_, err := repo.GetRun(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrRunNotFound)
}
