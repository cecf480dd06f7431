// Package stats fetches and caches per-player game logs from the upstream
// stats provider.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/models"
	"github.com/yourusername/props-advisor/internal/transport"
)

// ClientConfig configures the stats provider client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	PerPage int
}

// Client calls the game-log provider. Responses are parsed into
// models.GameLogEntry; callers handle caching and truncation.
type Client struct {
	http   *transport.Client
	cfg    ClientConfig
	logger *logrus.Logger
}

// NewClient creates a stats provider client.
func NewClient(cfg ClientConfig, httpClient *transport.Client, logger *logrus.Logger) *Client {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 100
	}
	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
	}
}

// statsResponse mirrors the provider's stats payload. Minutes arrive as a
// string ("34" or "34:12") and turnovers under the singular "turnover" key.
type statsResponse struct {
	Data []statsRow `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
	} `json:"meta"`
}

type statsRow struct {
	ID       int    `json:"id"`
	Min      string `json:"min"`
	Pts      int    `json:"pts"`
	Reb      int    `json:"reb"`
	Ast      int    `json:"ast"`
	Stl      int    `json:"stl"`
	Blk      int    `json:"blk"`
	Turnover int    `json:"turnover"`
	FGM      int    `json:"fgm"`
	FGA      int    `json:"fga"`
	FG3M     int    `json:"fg3m"`
	FG3A     int    `json:"fg3a"`
	FTM      int    `json:"ftm"`
	FTA      int    `json:"fta"`
	Game     struct {
		ID   int    `json:"id"`
		Date string `json:"date"`
	} `json:"game"`
}

// FetchGameLogs retrieves a player's game logs for a season, sorted by game
// date descending.
func (c *Client) FetchGameLogs(ctx context.Context, playerID, season int) ([]models.GameLogEntry, error) {
	q := url.Values{}
	q.Set("player_ids[]", strconv.Itoa(playerID))
	q.Set("seasons[]", strconv.Itoa(season))
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))

	endpoint := fmt.Sprintf("%s/stats?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())

	// The provider authenticates with the bare key in the Authorization
	// header, no Bearer prefix.
	resp, err := c.http.Get(ctx, endpoint, map[string]string{"Authorization": c.cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("stats provider request failed: %w", err)
	}
	defer transport.DrainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats provider returned status %d", resp.StatusCode)
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}

	logs := make([]models.GameLogEntry, 0, len(payload.Data))
	for _, row := range payload.Data {
		gameDate, err := parseGameDate(row.Game.Date)
		if err != nil {
			c.logger.WithError(err).WithFields(logrus.Fields{
				"player_id": playerID,
				"game_id":   row.Game.ID,
			}).Warn("Skipping game log with unparseable date")
			continue
		}

		logs = append(logs, models.GameLogEntry{
			GameID:    row.Game.ID,
			GameDate:  gameDate,
			Minutes:   parseMinutes(row.Min),
			Points:    row.Pts,
			Rebounds:  row.Reb,
			Assists:   row.Ast,
			Steals:    row.Stl,
			Blocks:    row.Blk,
			Turnovers: row.Turnover,
			FGM:       row.FGM,
			FGA:       row.FGA,
			FG3M:      row.FG3M,
			FG3A:      row.FG3A,
			FTM:       row.FTM,
			FTA:       row.FTA,
		})
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].GameDate.After(logs[j].GameDate)
	})

	return logs, nil
}

// parseGameDate accepts both date-only and RFC3339 timestamps.
func parseGameDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", raw)
}

// parseMinutes converts the provider's "MM" or "MM:SS" strings to fractional
// minutes. Malformed values count as zero minutes played.
func parseMinutes(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	parts := strings.SplitN(raw, ":", 2)
	minutes, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}
	if len(parts) == 2 {
		if seconds, err := strconv.ParseFloat(parts[1], 64); err == nil {
			minutes += seconds / 60.0
		}
	}
	return minutes
}
