package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/cache"
)

const tokenCacheKey = "inference:access_token"

// refreshLeeway is how far before expiry a cached token is discarded, so a
// token never goes stale mid-request.
const refreshLeeway = 5 * time.Minute

// TokenConfig configures the bearer credential source.
type TokenConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// TokenProvider fetches and caches the bearer token for the model endpoint.
type TokenProvider struct {
	http   *http.Client
	cfg    TokenConfig
	cache  cache.Store
	logger *logrus.Logger
}

// NewTokenProvider creates a token provider backed by the injected cache.
func NewTokenProvider(cfg TokenConfig, cacheStore cache.Store, logger *logrus.Logger) *TokenProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TokenProvider{
		http:   &http.Client{Timeout: timeout},
		cfg:    cfg,
		cache:  cacheStore,
		logger: logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid bearer token, refreshing through the auth endpoint
// when the cached one is absent or within the refresh leeway of expiry.
// Failure here is fatal for the whole request.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	if raw, found := p.cache.Get(ctx, tokenCacheKey); found {
		return string(raw), nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: auth endpoint returned status %d", ErrAuthenticationFailed, resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthenticationFailed)
	}

	TokenRefreshTotal.Inc()

	ttl := time.Duration(tok.ExpiresIn)*time.Second - refreshLeeway
	if ttl > 0 {
		p.cache.Set(ctx, tokenCacheKey, []byte(tok.AccessToken), ttl)
	}

	p.logger.WithField("expires_in", tok.ExpiresIn).Debug("Refreshed model access token")
	return tok.AccessToken, nil
}

// Invalidate drops the cached token, forcing a refresh on next use.
func (p *TokenProvider) Invalidate(ctx context.Context) {
	p.cache.Delete(ctx, tokenCacheKey)
}
