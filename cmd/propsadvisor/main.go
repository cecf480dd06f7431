// Package main provides the entry point for the props advisor service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/props-advisor/internal/analysis"
	"github.com/yourusername/props-advisor/internal/api"
	"github.com/yourusername/props-advisor/internal/cache"
	"github.com/yourusername/props-advisor/internal/config"
	"github.com/yourusername/props-advisor/internal/database"
	"github.com/yourusername/props-advisor/internal/health"
	"github.com/yourusername/props-advisor/internal/inference"
	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/metrics"
	"github.com/yourusername/props-advisor/internal/oddsfeed"
	"github.com/yourusername/props-advisor/internal/repository"
	"github.com/yourusername/props-advisor/internal/roster"
	"github.com/yourusername/props-advisor/internal/scheduler"
	"github.com/yourusername/props-advisor/internal/stats"
	"github.com/yourusername/props-advisor/internal/transport"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile   string
	gameDateFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	analyzeCmd.Flags().StringVar(&gameDateFlag, "game-date", "", "Restrict event lookup to one day (YYYY-MM-DD)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
}

var rootCmd = &cobra.Command{
	Use:   "propsadvisor",
	Short: "NBA player prop over/under recommendations",
	Long:  `Analyzes player prop markets for an upcoming NBA game and ranks the most confident over/under recommendations.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <team1> <team2>",
	Short: "Run one analysis and print the report as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0], args[1], gameDateFlag)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// app bundles everything serve and analyze share.
type app struct {
	cfg          *config.Config
	log          *logrus.Logger
	orchestrator *analysis.Orchestrator
	roster       *roster.Roster
	cacheStore   cache.Store
	memoryCache  *cache.MemoryStore
	db           *database.DB
	repo         *repository.PostgresRecommendationRepository
}

func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.LoadSecretsFromAWS(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Info("Props advisor starting")

	a := &app{cfg: cfg, log: appLog}

	switch cfg.Cache.Backend {
	case "redis":
		store, err := cache.NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisDB, cfg.Cache.RedisPrefix, appLog)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.cacheStore = store
	default:
		a.memoryCache = cache.NewMemoryStore(cfg.CacheDefaultTTL())
		a.cacheStore = a.memoryCache
	}

	oddsHTTP := transport.NewClient(transport.Config{
		Timeout:      time.Duration(cfg.OddsProvider.TimeoutSeconds) * time.Second,
		MaxRetries:   cfg.OddsProvider.RetryAttempts,
		RetryWaitMin: time.Second,
		RetryWaitMax: 10 * time.Second,
		RateLimit:    cfg.OddsProvider.RateLimitPerSecond,
	}, appLog)
	oddsClient := oddsfeed.NewClient(oddsfeed.ClientConfig{
		BaseURL: cfg.OddsProvider.BaseURL,
		APIKey:  cfg.OddsProvider.APIKey,
	}, oddsHTTP, appLog)

	statsHTTP := transport.NewClient(transport.Config{
		Timeout:      time.Duration(cfg.StatsProvider.TimeoutSeconds) * time.Second,
		MaxRetries:   cfg.StatsProvider.RetryAttempts,
		RetryWaitMin: time.Second,
		RetryWaitMax: 10 * time.Second,
		RateLimit:    cfg.StatsProvider.RateLimitPerSecond,
	}, appLog)
	statsClient := stats.NewClient(stats.ClientConfig{
		BaseURL: cfg.StatsProvider.BaseURL,
		APIKey:  cfg.StatsProvider.APIKey,
	}, statsHTTP, appLog)
	gameLogStore := stats.NewStore(statsClient, a.cacheStore, cfg.GameLogTTL(), appLog)

	tokens := inference.NewTokenProvider(inference.TokenConfig{
		TokenURL:     cfg.Model.TokenURL,
		ClientID:     cfg.Model.ClientID,
		ClientSecret: cfg.Model.ClientSecret,
	}, a.cacheStore, appLog)
	model := inference.NewClient(inference.ClientConfig{
		EndpointURL: cfg.Model.PredictURL,
	}, tokens, appLog)

	a.roster = roster.New(appLog)
	if cfg.Analysis.RosterFile != "" {
		if err := a.roster.LoadFile(cfg.Analysis.RosterFile); err != nil {
			return nil, fmt.Errorf("failed to load roster file: %w", err)
		}
	}
	metrics.RosterPlayers.Set(float64(a.roster.Size()))

	var recorder analysis.Recorder
	if cfg.Database.Enabled {
		db, err := database.NewDB(ctx, database.Config{
			Host:           cfg.Database.Host,
			Port:           cfg.Database.Port,
			User:           cfg.Database.User,
			Password:       cfg.Database.Password,
			Name:           cfg.Database.Name,
			SSLMode:        cfg.Database.SSLMode,
			MaxConnections: cfg.Database.MaxConnections,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
		a.repo = repository.NewPostgresRecommendationRepository(db)
		if err := a.repo.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare database schema: %w", err)
		}
		recorder = a.repo
		appLog.Info("Database connection established")
	}

	a.orchestrator = analysis.NewOrchestrator(analysis.Config{
		Concurrency:  cfg.Analysis.Concurrency,
		TopProps:     cfg.Analysis.TopProps,
		GameLogLimit: cfg.StatsProvider.GameLogLimit,
	}, oddsClient, gameLogStore, model, a.roster, recorder, appLog)

	return a, nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if store, ok := a.cacheStore.(*cache.RedisStore); ok {
		if err := store.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to close redis connection")
		}
	}
}

func runServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Health probes
	healthServer := health.NewServer(health.Config{
		ServiceName: a.cfg.App.Name,
		Version:     Version,
		Port:        a.cfg.Health.Port,
	}, a.log)
	if a.db != nil {
		healthServer.RegisterCheck("database", a.db.Ping)
	}
	if err := healthServer.Start(ctx); err != nil {
		return err
	}

	// Metrics
	var metricsServer *metrics.Server
	if a.cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(a.cfg.Metrics.Port)
		go func() {
			if err := metricsServer.Start(); err != nil {
				a.log.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	// Maintenance jobs
	sched := scheduler.New(a.log)
	if a.cfg.Analysis.RosterReloadCron != "" {
		if err := sched.ScheduleRosterReload(a.cfg.Analysis.RosterReloadCron, a.cfg.Analysis.RosterFile, a.roster); err != nil {
			return err
		}
	}
	if a.memoryCache != nil {
		if err := sched.ScheduleCacheStats(time.Minute, "memory", a.memoryCache); err != nil {
			return err
		}
	}
	sched.Start()
	defer sched.Stop()

	// API server
	handler := api.NewHandler(a.orchestrator, runStore(a.repo), a.log)
	server := api.NewServer(api.ServerConfig{
		Port:        a.cfg.Server.Port,
		CORSOrigins: a.cfg.Server.CORSOrigins,
	}, handler, a.log)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()
	healthServer.SetReady(true)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down")
	healthServer.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.log.WithError(err).Error("API server shutdown failed")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			a.log.WithError(err).Error("Metrics server shutdown failed")
		}
	}
	return nil
}

// runStore keeps the nil interface nil when persistence is disabled.
func runStore(repo *repository.PostgresRecommendationRepository) api.RunStore {
	if repo == nil {
		return nil
	}
	return repo
}

func runAnalyze(team1, team2, gameDate string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var date time.Time
	if gameDate != "" {
		parsed, err := time.Parse("2006-01-02", gameDate)
		if err != nil {
			return fmt.Errorf("invalid --game-date %q, expected YYYY-MM-DD", gameDate)
		}
		date = parsed
	}

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.orchestrator.Analyze(ctx, analysis.Request{
		Sport:    analysis.SportNBA,
		Team1:    team1,
		Team2:    team2,
		GameDate: date,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
