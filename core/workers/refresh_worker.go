// ABOUTME: Refresh worker keeps the stored fixture list current in the background
// ABOUTME: Runs one refresh on start and then one per interval until stopped

package workers

import (
	"context"
	"sync"
	"time"

	"highlights-app-api/core/interfaces"
)

// Refresher runs one fixture refresh cycle
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// RefreshWorker periodically refreshes fixtures
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	logger    interfaces.Logger
	wg        sync.WaitGroup
	cancel    context.CancelFunc
	mu        sync.Mutex
	running   bool
}

// WorkerConfig holds configuration for the refresh worker
type WorkerConfig struct {
	// Interval between refresh cycles
	Interval time.Duration

	// Timeout bounds a single refresh cycle
	Timeout time.Duration
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Interval: 6 * time.Hour,
		Timeout:  time.Minute,
	}
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(refresher Refresher, logger interfaces.Logger, config WorkerConfig) *RefreshWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultWorkerConfig().Interval
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultWorkerConfig().Timeout
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &RefreshWorker{
		refresher: refresher,
		interval:  config.Interval,
		timeout:   config.Timeout,
		logger:    logger,
	}
}

// Start runs an immediate refresh in the background and schedules the rest.
// Calling Start on a running worker is a no-op.
func (rw *RefreshWorker) Start() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.running {
		return nil
	}
	if rw.refresher == nil {
		return ErrNoRefresher
	}

	ctx, cancel := context.WithCancel(context.Background())
	rw.cancel = cancel
	rw.wg.Add(1)
	go rw.run(ctx)

	rw.running = true
	return nil
}

// Stop cancels any refresh in flight and waits for the loop to exit
func (rw *RefreshWorker) Stop() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if !rw.running {
		return nil
	}

	rw.cancel()
	rw.wg.Wait()

	rw.running = false
	return nil
}

// Running reports whether the worker loop is active
func (rw *RefreshWorker) Running() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.running
}

func (rw *RefreshWorker) run(ctx context.Context) {
	defer rw.wg.Done()

	ticker := time.NewTicker(rw.interval)
	defer ticker.Stop()

	rw.refresh(ctx)
	for {
		select {
		case <-ticker.C:
			rw.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (rw *RefreshWorker) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, rw.timeout)
	defer cancel()

	start := time.Now()
	count, err := rw.refresher.Refresh(ctx)
	if err != nil {
		rw.logger.Warn("Scheduled fixture refresh failed", map[string]interface{}{
			"error":    err.Error(),
			"duration": time.Since(start).String(),
		})
		return
	}

	rw.logger.Info("Scheduled fixture refresh complete", map[string]interface{}{
		"count":    count,
		"duration": time.Since(start).String(),
	})
}

// Error definitions
var (
	ErrNoRefresher = &WorkerError{Message: "refresh worker has nothing to refresh"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
