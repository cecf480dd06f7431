// Package metrics provides the centralized Prometheus registry for the
// props advisor.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/props-advisor/internal/inference"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysisRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "analysis_runs_total",
		Help:      "Total number of completed analysis runs",
	})
	AnalysisErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "analysis_errors_total",
		Help:      "Total number of failed analysis runs by reason",
	}, []string{"reason"})
	CandidatesAnalyzedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "candidates_analyzed_total",
		Help:      "Total number of star prop candidates sent through the pipeline",
	})
	PropsRecommendedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "props_advisor",
		Name:      "props_recommended_total",
		Help:      "Total number of props that made a report's ranked results",
	})
)

// Gauge metrics
var (
	RosterPlayers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "props_advisor",
		Name:      "roster_players",
		Help:      "Number of star players currently on the allow-list",
	})
	CacheHits = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "props_advisor",
		Name:      "cache_hits",
		Help:      "Cache hits since process start",
	}, []string{"backend"})
	CacheMisses = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "props_advisor",
		Name:      "cache_misses",
		Help:      "Cache misses since process start",
	}, []string{"backend"})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "props_advisor",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of full analysis runs in seconds",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})
)

// InitRegistry initializes the global Prometheus registry, including the
// inference package's metrics.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysisRunsTotal)
		registry.MustRegister(AnalysisErrorsTotal)
		registry.MustRegister(CandidatesAnalyzedTotal)
		registry.MustRegister(PropsRecommendedTotal)

		registry.MustRegister(RosterPlayers)
		registry.MustRegister(CacheHits)
		registry.MustRegister(CacheMisses)

		registry.MustRegister(AnalysisDuration)

		registry.MustRegister(inference.PredictionsTotal)
		registry.MustRegister(inference.PredictionLatency)
		registry.MustRegister(inference.PredictionErrorsTotal)
		registry.MustRegister(inference.TokenRefreshTotal)
	})
	return registry
}

// GetRegistry returns the initialized registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// RecordAnalysisRun records one successful run.
func RecordAnalysisRun(durationSeconds float64, candidates, recommended int) {
	AnalysisRunsTotal.Inc()
	AnalysisDuration.Observe(durationSeconds)
	CandidatesAnalyzedTotal.Add(float64(candidates))
	PropsRecommendedTotal.Add(float64(recommended))
}

// RecordAnalysisError records one failed run.
func RecordAnalysisError(reason string) {
	AnalysisErrorsTotal.WithLabelValues(reason).Inc()
}

// UpdateCacheStats publishes cache hit/miss totals for a backend.
func UpdateCacheStats(backend string, hits, misses int64) {
	CacheHits.WithLabelValues(backend).Set(float64(hits))
	CacheMisses.WithLabelValues(backend).Set(float64(misses))
}

// Server exposes the registry over HTTP.
type Server struct {
	srv *http.Server
}

// NewServer builds the /metrics endpoint on the given port.
func NewServer(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{}))

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Start runs the metrics server until it fails or is shut down.
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("metrics server failed: %w", err)
	}
	return nil
}

// Shutdown stops the metrics server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
