package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/logger"
)

// ServerConfig tunes the public HTTP server.
type ServerConfig struct {
	Port        int
	CORSOrigins []string
}

// Server is the public HTTP surface of the service.
type Server struct {
	cfg     ServerConfig
	handler *Handler
	log     *logrus.Entry
	srv     *http.Server
}

// NewServer builds the router and wraps it in an http.Server.
func NewServer(cfg ServerConfig, handler *Handler, log *logrus.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		handler: handler,
		log:     logger.WithComponent(log, "api"),
	}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * analyzeTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router assembles the chi mux with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/props/analyze", s.handler.AnalyzeProps)
		r.Get("/runs", s.handler.RecentRuns)
		r.Get("/runs/{runID}", s.handler.GetRun)
	})

	return r
}

// Start runs the server until it fails or is shut down.
func (s *Server) Start() error {
	s.log.WithField("port", s.cfg.Port).Info("API server listening")
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
