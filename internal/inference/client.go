package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/features"
	"github.com/yourusername/props-advisor/internal/models"
)

// Per-call timeouts. Predict calls are deliberately not retried: a replayed
// request double-bills inference quota, so failures surface to the caller.
const (
	singleTimeout = 30 * time.Second
	batchTimeout  = 60 * time.Second
)

// ClientConfig configures the model endpoint client.
type ClientConfig struct {
	EndpointURL string
}

// Client calls the hosted classification model over HTTPS with a cached
// bearer credential.
type Client struct {
	http   *http.Client
	tokens *TokenProvider
	cfg    ClientConfig
	logger *logrus.Logger
}

// NewClient creates a model client.
func NewClient(cfg ClientConfig, tokens *TokenProvider, logger *logrus.Logger) *Client {
	return &Client{
		// The transport deadline is governed per call; keep a generous
		// client-level ceiling as a backstop
		http:   &http.Client{Timeout: batchTimeout + 5*time.Second},
		tokens: tokens,
		cfg:    cfg,
		logger: logger,
	}
}

// predictRequest is the instances batch envelope the model expects.
type predictRequest struct {
	Instances []features.Vector `json:"instances"`
}

// predictionRecord mirrors one structured prediction in the response.
// Pointer fields distinguish absent from zero so a malformed record fails
// parsing instead of defaulting.
type predictionRecord struct {
	Prediction       *string  `json:"prediction"`
	ProbabilityOver  *float64 `json:"probability_over"`
	ProbabilityUnder *float64 `json:"probability_under"`
	Confidence       *float64 `json:"confidence"`
}

type predictResponse struct {
	Predictions []predictionRecord `json:"predictions"`
}

// Predict runs a single inference.
func (c *Client) Predict(ctx context.Context, vec features.Vector) (*models.Prediction, error) {
	preds, err := c.call(ctx, []features.Vector{vec}, singleTimeout, "single")
	if err != nil {
		return nil, err
	}
	return preds[0], nil
}

// PredictBatch runs inference over a batch, preserving input order.
func (c *Client) PredictBatch(ctx context.Context, vecs []features.Vector) ([]*models.Prediction, error) {
	if len(vecs) == 0 {
		return nil, ErrEmptyBatch
	}
	return c.call(ctx, vecs, batchTimeout, "batch")
}

func (c *Client) call(ctx context.Context, vecs []features.Vector, timeout time.Duration, mode string) ([]*models.Prediction, error) {
	start := time.Now()
	defer func() {
		PredictionLatency.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	}()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		PredictionErrorsTotal.WithLabelValues(mode, "auth").Inc()
		return nil, err
	}

	body, err := json.Marshal(predictRequest{Instances: vecs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal instances: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		PredictionErrorsTotal.WithLabelValues(mode, "network").Inc()
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.tokens.Invalidate(ctx)
		PredictionErrorsTotal.WithLabelValues(mode, "auth").Inc()
		return nil, fmt.Errorf("%w: endpoint returned status %d", ErrAuthenticationFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		PredictionErrorsTotal.WithLabelValues(mode, "http").Inc()
		return nil, fmt.Errorf("%w: status %d: %s", ErrModelUnavailable, resp.StatusCode, string(raw))
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		PredictionErrorsTotal.WithLabelValues(mode, "parse").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(parsed.Predictions) != len(vecs) {
		PredictionErrorsTotal.WithLabelValues(mode, "parse").Inc()
		return nil, fmt.Errorf("%w: got %d predictions for %d instances",
			ErrInvalidResponse, len(parsed.Predictions), len(vecs))
	}

	out := make([]*models.Prediction, len(parsed.Predictions))
	for i, rec := range parsed.Predictions {
		pred, err := buildPrediction(rec)
		if err != nil {
			PredictionErrorsTotal.WithLabelValues(mode, "parse").Inc()
			return nil, fmt.Errorf("prediction %d: %w", i, err)
		}
		out[i] = pred
	}

	PredictionsTotal.WithLabelValues(mode).Add(float64(len(out)))
	c.logger.WithFields(logrus.Fields{
		"mode":  mode,
		"count": len(out),
	}).Debug("Model predictions completed")

	return out, nil
}

// buildPrediction validates a record and derives the presentation fields.
// The model's confidence scalar is authoritative; it is intentionally not
// recomputed from the probabilities, which can disagree for a miscalibrated
// model.
func buildPrediction(rec predictionRecord) (*models.Prediction, error) {
	if rec.Prediction == nil || rec.ProbabilityOver == nil || rec.ProbabilityUnder == nil || rec.Confidence == nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidResponse)
	}

	confidence := *rec.Confidence
	return &models.Prediction{
		Side:                *rec.Prediction,
		ProbabilityOver:     *rec.ProbabilityOver,
		ProbabilityUnder:    *rec.ProbabilityUnder,
		Confidence:          confidence,
		ProbabilityOverPct:  formatPercent(*rec.ProbabilityOver),
		ProbabilityUnderPct: formatPercent(*rec.ProbabilityUnder),
		ConfidencePct:       formatPercent(confidence),
		Tier:                Tier(confidence),
		ShouldBet:           ShouldBet(confidence),
	}, nil
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
