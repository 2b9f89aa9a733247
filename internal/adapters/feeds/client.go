// Package feeds implements the outbound adapter for subscribed iCalendar
// feeds. It downloads each configured feed over HTTP, parses the VEVENT
// components, expands recurrence rules, and translates everything into domain
// occurrences so that the application layer never sees the wire format.
package feeds

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/chronod/internal/app/fanout"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/platform/config"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// Compile-time check that Client implements ports.FeedClient.
var _ ports.FeedClient = (*Client)(nil)

// httpGetter is the subset of the platform HTTP client used by this adapter.
// Narrowing the dependency keeps tests free of real network plumbing.
type httpGetter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client implements ports.FeedClient over a set of configured feed sources.
// All sources share one instrumented HTTP client; fetches run concurrently
// up to the configured limit.
type Client struct {
	http          httpGetter
	sources       []config.FeedSource
	maxConcurrent int
	logger        *slog.Logger
}

// NewClient creates a feed client for the given sources. The getter is
// typically the platform httpclient, which brings retry, circuit breaking,
// and tracing along. A nil logger discards output.
func NewClient(getter httpGetter, cfg *config.FeedsConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Client{
		http:          getter,
		sources:       cfg.Sources,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// FetchOccurrences downloads every subscribed feed, expands recurring
// entries, and returns the occurrences inside the inclusive [from, to] date
// range. Failures of individual feeds are collected into errs; occurrences
// from the feeds that succeeded are still returned.
func (c *Client) FetchOccurrences(ctx context.Context, from, to date.Date) ([]event.Occurrence, []error) {
	if len(c.sources) == 0 {
		return nil, nil
	}

	results := fanout.Run(ctx, c.maxConcurrent, c.sources,
		func(ctx context.Context, src config.FeedSource) ([]event.Occurrence, error) {
			return c.fetchSource(ctx, src, from, to)
		})

	var occs []event.Occurrence
	var errs []error
	for i, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("feed %s: %w", c.sources[i].Name, res.Err))
			continue
		}
		occs = append(occs, res.Value...)
	}
	return occs, errs
}

// fetchSource downloads and translates a single feed.
func (c *Client) fetchSource(ctx context.Context, src config.FeedSource, from, to date.Date) ([]event.Occurrence, error) {
	body, err := c.http.Get(ctx, src.URL)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to download feed",
			slog.String("operation", "FetchOccurrences"),
			slog.String("feed", src.Name),
			slog.Any("error", err),
		)
		return nil, err
	}

	parsed, err := parseCalendar(src.Name, body)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to parse feed",
			slog.String("operation", "FetchOccurrences"),
			slog.String("feed", src.Name),
			slog.Any("error", err),
		)
		return nil, err
	}

	occs := expandOccurrences(parsed, from, to)

	c.logger.InfoContext(ctx, "feed fetched",
		slog.String("feed", src.Name),
		slog.Int("events", len(parsed)),
		slog.Int("occurrences", len(occs)),
	)
	return occs, nil
}
