package retention

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a Handler's prune pass on a cron schedule, so expired
// log files are removed even when the active file rotates rarely.
// Only pruning is scheduled; the rename pass stays rotation-event-driven.
type Scheduler struct {
	handler  *Handler
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a scheduler for the given handler. An empty
// schedule disables scheduled pruning.
func NewScheduler(handler *Handler, schedule string) *Scheduler {
	return &Scheduler{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "logging.retention.scheduler"),
	}
}

// Start begins scheduled pruning. If no schedule is configured, Start is a
// no-op and returns nil. The scheduler stops itself when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("prune schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, s.runPruning); err != nil {
		return fmt.Errorf("failed to schedule pruning: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("retention scheduler started",
		"schedule", s.schedule,
		"max_age_days", s.handler.MaxAgeDays(),
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runPruning executes one scheduled prune pass.
func (s *Scheduler) runPruning() {
	removed := s.handler.Prune()
	if removed > 0 {
		s.logger.Info("scheduled pruning completed",
			"removed", removed,
		)
	} else {
		s.logger.Debug("scheduled pruning completed, nothing to remove")
	}
}

// Stop stops the scheduler and waits for a running prune pass to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done()
		s.running = false
		s.logger.Info("retention scheduler stopped")
	}
}

// IsRunning reports whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled prune time, or nil when the scheduler
// is not running.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
