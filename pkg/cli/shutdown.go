package cli

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CleanupFunc releases a resource during shutdown. Implementations should
// honor the context deadline and return promptly once it expires.
type CleanupFunc func(ctx context.Context) error

type cleanup struct {
	name string
	fn   CleanupFunc
}

// Shutdown runs registered cleanup callbacks in registration order when the
// process is asked to stop. A callback that fails is logged and the
// remaining callbacks still run, so one broken resource cannot block the
// rest of the teardown.
type Shutdown struct {
	mu       sync.Mutex
	cleanups []cleanup
	done     bool
	timeout  time.Duration
	logger   *slog.Logger
}

// NewShutdown creates a shutdown coordinator. Each callback gets at most
// timeout to finish.
func NewShutdown(timeout time.Duration) *Shutdown {
	return &Shutdown{
		timeout: timeout,
		logger:  slog.Default().With("component", "shutdown"),
	}
}

// Register adds a named cleanup callback. Callbacks run in the order they
// were registered.
func (s *Shutdown) Register(name string, fn CleanupFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

// Run executes all registered callbacks. It is safe to call more than
// once; callbacks only run the first time. Returns the number of
// callbacks that failed.
func (s *Shutdown) Run() int {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return 0
	}
	s.done = true
	cleanups := s.cleanups
	s.mu.Unlock()

	failed := 0
	for _, c := range cleanups {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := c.fn(ctx)
		cancel()
		if err != nil {
			failed++
			s.logger.Warn("Cleanup failed", "name", c.name, "error", err)
			continue
		}
		s.logger.Debug("Cleanup complete", "name", c.name)
	}
	return failed
}
