// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/analysis"
	"github.com/yourusername/props-advisor/internal/inference"
	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/models"
)

// analyzeTimeout bounds one full pipeline run, batch model call included.
const analyzeTimeout = 90 * time.Second

// Analyzer runs the analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Report, error)
}

// RunStore reads persisted analysis history. Optional.
type RunStore interface {
	GetRun(ctx context.Context, runID uuid.UUID) (*analysis.Report, error)
	RecentRuns(ctx context.Context, limit int) ([]*analysis.Report, error)
}

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	analyzer Analyzer
	runs     RunStore
	validate *validator.Validate
	log      *logrus.Entry
}

// NewHandler creates a new handler. runs may be nil when persistence is
// disabled; the history endpoints then respond 404.
func NewHandler(analyzer Analyzer, runs RunStore, log *logrus.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		runs:     runs,
		validate: validator.New(),
		log:      logger.WithComponent(log, "api"),
	}
}

// AnalyzeProps handles POST /api/v1/props/analyze.
func (h *Handler) AnalyzeProps(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request: sport must be basketball_nba and both team names are required", err)
		return
	}

	var gameDate time.Time
	if req.GameDate != "" {
		gameDate, _ = time.Parse("2006-01-02", req.GameDate)
	}

	report, err := h.analyzer.Analyze(ctx, analysis.Request{
		Sport:    req.Sport,
		Team1:    req.Team1,
		Team2:    req.Team2,
		GameDate: gameDate,
	})
	if err != nil {
		h.respondAnalyzeError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, newAnalyzeResponse(report))
}

// GetRun handles GET /api/v1/runs/{runID}.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		h.respondError(w, http.StatusNotFound, "run history is not enabled", nil)
		return
	}

	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid run id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report, err := h.runs.GetRun(ctx, runID)
	if errors.Is(err, models.ErrRunNotFound) {
		h.respondError(w, http.StatusNotFound, "analysis run not found", nil)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to load analysis run", err)
		return
	}

	h.respondJSON(w, http.StatusOK, newAnalyzeResponse(report))
}

// RecentRuns handles GET /api/v1/runs.
func (h *Handler) RecentRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		h.respondError(w, http.StatusNotFound, "run history is not enabled", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	reports, err := h.runs.RecentRuns(ctx, 20)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to list analysis runs", err)
		return
	}

	out := make([]AnalyzeResponse, 0, len(reports))
	for _, report := range reports {
		out = append(out, newAnalyzeResponse(report))
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  out,
		"count": len(out),
	})
}

// respondAnalyzeError maps pipeline sentinel errors onto HTTP statuses.
func (h *Handler) respondAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnsupportedSport), errors.Is(err, models.ErrMissingTeams):
		h.respondError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrNoOddsData),
		errors.Is(err, models.ErrNoRosterMatches):
		h.respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, inference.ErrAuthenticationFailed):
		h.respondError(w, http.StatusInternalServerError, "model authentication failed", err)
	case errors.Is(err, context.DeadlineExceeded):
		h.respondError(w, http.StatusGatewayTimeout, "analysis timed out", err)
	default:
		h.respondError(w, http.StatusInternalServerError, "analysis failed", err)
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.WithError(err).Error("Failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		h.log.WithError(err).WithField("status", status).Warn(message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.WithError(err).Error("Failed to encode error response")
	}
}
