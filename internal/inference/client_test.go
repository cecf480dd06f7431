package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/props-advisor/internal/cache"
	"github.com/yourusername/props-advisor/internal/features"
	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/models"
)

func tokenServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		fmt.Fprint(w, `{"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, modelHandler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var tokenCalls int32
	tokens := NewTokenProvider(TokenConfig{
		TokenURL:     tokenServer(t, &tokenCalls).URL,
		ClientID:     "id",
		ClientSecret: "secret",
	}, cache.NewMemoryStore(time.Minute), logger.NewLogger("error"))

	model := httptest.NewServer(modelHandler)
	t.Cleanup(model.Close)

	client := NewClient(ClientConfig{EndpointURL: model.URL}, tokens, logger.NewLogger("error"))
	return client, &tokenCalls
}

func vectorWithMarker(marker float64) features.Vector {
	v := features.Vector{}
	for _, k := range features.Keys() {
		if features.IsCategorical(k) {
			v[k] = "x"
		} else {
			v[k] = 0.0
		}
	}
	v["LINE"] = marker
	return v
}

func TestPredictParsesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req struct {
			Instances []map[string]interface{} `json:"instances"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Instances, 1)
		assert.Len(t, req.Instances[0], features.NumKeys)

		fmt.Fprint(w, `{"predictions": [
			{"prediction": "over", "probability_over": 0.62, "probability_under": 0.38, "confidence": 0.12}
		]}`)
	})

	pred, err := client.Predict(context.Background(), vectorWithMarker(25.5))
	require.NoError(t, err)

	assert.Equal(t, models.SideOver, pred.Side)
	assert.InDelta(t, 0.62, pred.ProbabilityOver, 1e-9)
	assert.InDelta(t, 0.12, pred.Confidence, 1e-9)
	assert.Equal(t, "62.0%", pred.ProbabilityOverPct)
	assert.Equal(t, "12.0%", pred.ConfidencePct)
	assert.Equal(t, models.TierMedium, pred.Tier)
	assert.True(t, pred.ShouldBet)
}

func TestPredictTrustsModelConfidence(t *testing.T) {
	// Probabilities imply |0.9 - 0.5| = 0.4, but the model says 0.05; the
	// returned confidence field wins
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"predictions": [
			{"prediction": "over", "probability_over": 0.9, "probability_under": 0.1, "confidence": 0.05}
		]}`)
	})

	pred, err := client.Predict(context.Background(), vectorWithMarker(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.05, pred.Confidence, 1e-9)
	assert.Equal(t, models.TierLow, pred.Tier)
	assert.False(t, pred.ShouldBet)
}

func TestPredictBatchPreservesOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Instances []map[string]interface{} `json:"instances"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Echo each instance's LINE back as its confidence so ordering is
		// verifiable end to end
		fmt.Fprint(w, `{"predictions": [`)
		for i, inst := range req.Instances {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"prediction": "over", "probability_over": 0.5, "probability_under": 0.5, "confidence": %v}`,
				inst["LINE"])
		}
		fmt.Fprint(w, `]}`)
	})

	vecs := make([]features.Vector, 8)
	for i := range vecs {
		vecs[i] = vectorWithMarker(float64(i) / 100.0)
	}

	preds, err := client.PredictBatch(context.Background(), vecs)
	require.NoError(t, err)
	require.Len(t, preds, len(vecs))
	for i, p := range preds {
		assert.InDelta(t, float64(i)/100.0, p.Confidence, 1e-9, "prediction %d out of order", i)
	}
}

func TestPredictBatchEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.PredictBatch(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrEmptyBatch))
}

func TestPredictMissingFieldIsParseFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Missing prediction", `{"predictions": [{"probability_over": 0.6, "probability_under": 0.4, "confidence": 0.2}]}`},
		{"Missing probability_over", `{"predictions": [{"prediction": "over", "probability_under": 0.4, "confidence": 0.2}]}`},
		{"Missing probability_under", `{"predictions": [{"prediction": "over", "probability_over": 0.6, "confidence": 0.2}]}`},
		{"Missing confidence", `{"predictions": [{"prediction": "over", "probability_over": 0.6, "probability_under": 0.4}]}`},
		{"No predictions at all", `{"predictions": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})
			_, err := client.Predict(context.Background(), vectorWithMarker(1))
			assert.True(t, errors.Is(err, ErrInvalidResponse), "got %v", err)
		})
	}
}

func TestPredictTokenIsCachedAcrossCalls(t *testing.T) {
	client, tokenCalls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"predictions": [
			{"prediction": "under", "probability_over": 0.4, "probability_under": 0.6, "confidence": 0.2}
		]}`)
	})

	for i := 0; i < 3; i++ {
		_, err := client.Predict(context.Background(), vectorWithMarker(1))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(tokenCalls), "token must be fetched once and reused")
}

func TestPredictAuthFailureIsFatal(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(broken.Close)

	tokens := NewTokenProvider(TokenConfig{
		TokenURL: broken.URL,
		ClientID: "id",
	}, cache.NewMemoryStore(time.Minute), logger.NewLogger("error"))
	client := NewClient(ClientConfig{EndpointURL: broken.URL}, tokens, logger.NewLogger("error"))

	_, err := client.Predict(context.Background(), vectorWithMarker(1))
	assert.True(t, errors.Is(err, ErrAuthenticationFailed))
}

func TestTokenCachedUntilInvalidated(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"access_token": "tok", "expires_in": 3600}`)
	}))
	t.Cleanup(server.Close)

	store := cache.NewMemoryStore(time.Minute)
	tokens := NewTokenProvider(TokenConfig{TokenURL: server.URL}, store, logger.NewLogger("error"))

	_, err := tokens.Token(context.Background())
	require.NoError(t, err)

	// Within the TTL the cached token is reused
	_, err = tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Force expiry and observe a refresh
	tokens.Invalidate(context.Background())
	_, err = tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
