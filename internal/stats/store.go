package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/cache"
	"github.com/yourusername/props-advisor/internal/models"
)

// DefaultLimit bounds how many recent games a lookup returns when the
// caller does not specify one.
const DefaultLimit = 15

// Fetcher retrieves a player's full season game logs from the provider.
type Fetcher interface {
	FetchGameLogs(ctx context.Context, playerID, season int) ([]models.GameLogEntry, error)
}

// Store serves recent game logs through a TTL cache keyed by player and
// season. Provider failures and empty seasons both surface as an empty
// slice, never an error; empty results are not cached so a later request
// can retry.
type Store struct {
	fetcher Fetcher
	cache   cache.Store
	ttl     time.Duration
	logger  *logrus.Logger
}

// NewStore creates a game-log store. ttl governs how long fetched logs are
// served without a provider round trip.
func NewStore(fetcher Fetcher, cacheStore cache.Store, ttl time.Duration, logger *logrus.Logger) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		fetcher: fetcher,
		cache:   cacheStore,
		ttl:     ttl,
		logger:  logger,
	}
}

// GetRecentGames returns up to limit of the player's most recent games for
// a season, newest first. "No games" is a valid outcome for callers; it is
// returned as an empty slice.
func (s *Store) GetRecentGames(ctx context.Context, playerID, season, limit int) []models.GameLogEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	key := cacheKey(playerID, season)
	if raw, found := s.cache.Get(ctx, key); found {
		var cached []models.GameLogEntry
		if err := json.Unmarshal(raw, &cached); err == nil {
			return truncate(cached, limit)
		}
		// A corrupt entry falls through to a refetch
		s.cache.Delete(ctx, key)
	}

	logs, err := s.fetcher.FetchGameLogs(ctx, playerID, season)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"player_id": playerID,
			"season":    season,
		}).Warn("Game log fetch failed, treating as no data")
		return nil
	}

	if len(logs) == 0 {
		return nil
	}

	if raw, err := json.Marshal(logs); err == nil {
		s.cache.Set(ctx, key, raw, s.ttl)
	}

	return truncate(logs, limit)
}

func cacheKey(playerID, season int) string {
	return fmt.Sprintf("gamelogs:%d:%d", playerID, season)
}

func truncate(logs []models.GameLogEntry, limit int) []models.GameLogEntry {
	if len(logs) > limit {
		return logs[:limit]
	}
	return logs
}
