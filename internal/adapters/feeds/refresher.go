package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jsamuelsen11/chronod/internal/ports"
)

// Compile-time check that Refresher implements ports.HealthChecker.
var _ ports.HealthChecker = (*Refresher)(nil)

// Refresher rebuilds the feed cache on a cron schedule. It also satisfies
// ports.HealthChecker so the readiness probe can surface a failing refresh.
type Refresher struct {
	events   ports.EventService
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron

	mu      sync.RWMutex
	lastRun time.Time
	lastErr error
}

// NewRefresher creates a Refresher that calls the event service's
// RefreshFeeds on the given cron schedule (standard five-field format).
// A nil logger discards output.
func NewRefresher(events ports.EventService, schedule string, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Refresher{
		events:   events,
		schedule: schedule,
		logger:   logger,
	}
}

// Start performs an immediate refresh, then schedules periodic ones. The
// context bounds the initial refresh only; scheduled runs get their own
// background context.
func (r *Refresher) Start(ctx context.Context) error {
	r.refresh(ctx)

	c := cron.New()
	if _, err := c.AddFunc(r.schedule, func() {
		r.refresh(context.Background())
	}); err != nil {
		return fmt.Errorf("scheduling feed refresh %q: %w", r.schedule, err)
	}
	c.Start()
	r.cron = c

	r.logger.Info("feed refresher started", slog.String("schedule", r.schedule))
	return nil
}

// Stop halts scheduled refreshes and waits for a running one to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.logger.Info("feed refresher stopped")
}

func (r *Refresher) refresh(ctx context.Context) {
	err := r.events.RefreshFeeds(ctx)

	r.mu.Lock()
	r.lastRun = time.Now()
	r.lastErr = err
	r.mu.Unlock()

	if err != nil {
		r.logger.ErrorContext(ctx, "scheduled feed refresh failed",
			slog.String("operation", "RefreshFeeds"),
			slog.Any("error", err),
		)
	}
}

// Name identifies this component in health check output.
func (r *Refresher) Name() string {
	return "feed-refresher"
}

// HealthCheck reports the outcome of the most recent refresh. A refresher
// that has not yet run reports healthy, since the cache simply has no data
// yet.
func (r *Refresher) HealthCheck(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.lastErr != nil {
		return fmt.Errorf("last refresh at %s failed: %w", r.lastRun.Format(time.RFC3339), r.lastErr)
	}
	return nil
}
