package inference

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for model traffic. Registered by metrics.InitRegistry.
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "model_predictions_total",
		Help:      "Total predictions returned by the model",
	}, []string{"mode"})

	PredictionLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "props_advisor",
		Name:      "model_prediction_latency_seconds",
		Help:      "Latency of model prediction calls in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode"})

	PredictionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "model_prediction_errors_total",
		Help:      "Total failed model prediction calls",
	}, []string{"mode", "reason"})

	TokenRefreshTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "model_token_refresh_total",
		Help:      "Total bearer token fetches against the auth endpoint",
	})
)
