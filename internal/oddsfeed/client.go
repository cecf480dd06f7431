package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/models"
	"github.com/yourusername/props-advisor/internal/transport"
)

// ClientConfig configures the odds provider client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Regions string
	Markets []string
}

// Client calls the odds/events provider.
type Client struct {
	http   *transport.Client
	cfg    ClientConfig
	logger *logrus.Logger
}

// NewClient creates an odds provider client.
func NewClient(cfg ClientConfig, httpClient *transport.Client, logger *logrus.Logger) *Client {
	if cfg.Regions == "" {
		cfg.Regions = "us"
	}
	if len(cfg.Markets) == 0 {
		cfg.Markets = []string{MarketPlayerPoints, MarketPlayerRebounds, MarketPlayerAssists}
	}
	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
	}
}

// ListEvents fetches the upcoming events for a sport.
func (c *Client) ListEvents(ctx context.Context, sport string) ([]Event, error) {
	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)

	endpoint := fmt.Sprintf("%s/v4/sports/%s/events?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(sport), q.Encode())

	resp, err := c.http.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("odds provider request failed: %w", err)
	}
	defer transport.DrainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds provider returned status %d", resp.StatusCode)
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}
	return events, nil
}

// FindEvent resolves the event matching two team names, in either home/away
// order, using normalized substring matching. A non-zero gameDate keeps only
// events commencing on that UTC calendar day, which disambiguates repeat
// matchups. Returns models.ErrEventNotFound when no event matches.
func (c *Client) FindEvent(ctx context.Context, sport, team1, team2 string, gameDate time.Time) (*Event, error) {
	events, err := c.ListEvents(ctx, sport)
	if err != nil {
		return nil, err
	}

	n1, n2 := normalize(team1), normalize(team2)
	for i := range events {
		if !gameDate.IsZero() && !sameUTCDate(events[i].CommenceTime, gameDate) {
			continue
		}
		home, away := normalize(events[i].HomeTeam), normalize(events[i].AwayTeam)
		if (teamMatches(home, n1) && teamMatches(away, n2)) ||
			(teamMatches(home, n2) && teamMatches(away, n1)) {
			return &events[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s vs %s", models.ErrEventNotFound, team1, team2)
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// EventOdds fetches bookmaker odds for one event across the configured prop
// markets.
func (c *Client) EventOdds(ctx context.Context, sport, eventID string) (*EventOdds, error) {
	q := url.Values{}
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("regions", c.cfg.Regions)
	q.Set("markets", strings.Join(c.cfg.Markets, ","))
	q.Set("oddsFormat", "american")

	endpoint := fmt.Sprintf("%s/v4/sports/%s/events/%s/odds?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(sport), url.PathEscape(eventID), q.Encode())

	resp, err := c.http.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("odds provider request failed: %w", err)
	}
	defer transport.DrainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: event %s", models.ErrNoOddsData, eventID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds provider returned status %d", resp.StatusCode)
	}

	var odds EventOdds
	if err := json.NewDecoder(resp.Body).Decode(&odds); err != nil {
		return nil, fmt.Errorf("failed to decode event odds: %w", err)
	}
	return &odds, nil
}

// normalize lowercases and strips everything but letters and digits so
// "LA Lakers" matches "Los Angeles Lakers" by substring.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func teamMatches(eventTeam, requested string) bool {
	if requested == "" {
		return false
	}
	return strings.Contains(eventTeam, requested) || strings.Contains(requested, eventTeam)
}
