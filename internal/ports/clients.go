package ports

import (
	"context"

	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
)

// FeedClient defines the client port for subscribed calendar feeds.
// Implemented by the feeds adapter; called by the application layer.
// The adapter translates the wire calendar format (iCalendar) into domain
// occurrences so that nothing above it ever sees VEVENTs.
type FeedClient interface {
	// FetchOccurrences downloads every subscribed feed, expands recurring
	// entries, and returns the concrete occurrences that fall inside the
	// inclusive [from, to] date range. Failures of individual feeds are
	// collected into errs; occurrences from the feeds that succeeded are
	// still returned.
	FetchOccurrences(ctx context.Context, from, to date.Date) (occs []event.Occurrence, errs []error)
}
