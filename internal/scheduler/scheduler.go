// Package scheduler runs the service's periodic maintenance jobs: roster
// reloads from disk and cache statistics publishing.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/props-advisor/internal/logger"
	"github.com/yourusername/props-advisor/internal/metrics"
)

// RosterReloader reloads the star-player allow-list from a file.
type RosterReloader interface {
	LoadFile(path string) error
	Size() int
}

// StatsSource reports cache hit/miss counts since process start.
type StatsSource interface {
	Stats() (hits, misses uint64, ratio float64)
}

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Entry

	mu        sync.Mutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// New creates a scheduler running in UTC.
func New(log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		log:  logger.WithComponent(log, "scheduler"),
	}
}

// ScheduleRosterReload reloads the star roster from path on the given
// cron expression. A failed reload keeps the previous roster.
func (s *Scheduler) ScheduleRosterReload(cronExpression, path string, roster RosterReloader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		if err := roster.LoadFile(path); err != nil {
			s.log.WithError(err).WithField("path", path).Warn("Roster reload failed, keeping previous roster")
			return
		}
		metrics.RosterPlayers.Set(float64(roster.Size()))
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to schedule roster reload: %w", err)
	}
	s.jobIDs = append(s.jobIDs, entryID)

	s.log.WithFields(logrus.Fields{
		"cron": cronExpression,
		"path": path,
	}).Info("Scheduled roster reload")
	return nil
}

// ScheduleCacheStats publishes cache hit/miss gauges every interval.
func (s *Scheduler) ScheduleCacheStats(interval time.Duration, backend string, source StatsSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}
	if interval < time.Second {
		interval = time.Second
	}

	jobFunc := func() {
		hits, misses, ratio := source.Stats()
		metrics.UpdateCacheStats(backend, int64(hits), int64(misses))
		s.log.WithFields(logrus.Fields{
			"backend": backend,
			"hits":    hits,
			"misses":  misses,
			"ratio":   fmt.Sprintf("%.2f", ratio),
		}).Debug("Cache statistics")
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), jobFunc)
	if err != nil {
		return fmt.Errorf("failed to schedule cache stats: %w", err)
	}
	s.jobIDs = append(s.jobIDs, entryID)

	return nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.log.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	s.log.Info("Scheduler stopped")
}

// JobCount reports how many jobs are registered.
func (s *Scheduler) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobIDs)
}
