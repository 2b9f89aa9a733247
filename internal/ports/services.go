package ports

import (
	"context"

	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
)

// DateDiff bundles the two difference measures computed for a date pair.
// Days is the whole-day count; Seconds preserves the historical reversed
// subtrahend order (start minus end).
type DateDiff struct {
	Days    int
	Seconds float64
}

// CalculatorService defines the service port for the date/time calculators.
// Implemented by the application layer; called by inbound adapters
// (handlers). All operations are pure: they parse caller-supplied text,
// compute, and return, holding no state between calls.
type CalculatorService interface {
	// DateDiff parses two YYYY-MM-DD dates and returns both difference
	// measures. Returns domain.ErrFormat on malformed text and
	// domain.ErrOrder when end is earlier than start.
	DateDiff(ctx context.Context, start, end string) (*DateDiff, error)

	// DateAdd parses a YYYY-MM-DD date, shifts it by the signed amount in
	// the given unit, and returns the canonical text of the result.
	// Returns domain.ErrFormat on malformed text and domain.ErrUnknownUnit
	// for a unit outside the enumeration.
	DateAdd(ctx context.Context, text string, amount int, u date.Unit) (string, error)

	// TimeGap parses two HH:MM:SS times and returns the elapsed seconds
	// between them within one wall-clock day. Returns domain.ErrFormat on
	// malformed text and domain.ErrOrder when start is after end.
	TimeGap(ctx context.Context, start, end string) (int, error)

	// TimeAdd parses an HH:MM:SS time, shifts it by the signed amount in
	// the given unit, and returns the formatted duration text (with a
	// day-count prefix when the addition crosses midnight).
	TimeAdd(ctx context.Context, text string, amount int, u clock.Unit) (string, error)

	// Convert rescales amount between two time units. Returns
	// domain.ErrUnknownUnit for a unit outside the enumeration.
	Convert(ctx context.Context, amount float64, from, to unit.Unit) (float64, error)
}

// EventService defines the service port for the in-memory event registry and
// the merged agenda view. Events live for the process lifetime only.
type EventService interface {
	// CreateEvent validates and stores a new event, returning it with a
	// server-assigned ID. Returns domain.ErrValidation on rule failures.
	CreateEvent(ctx context.Context, ev *event.Event) (*event.Event, error)

	// GetEvent returns a stored event by ID.
	// Returns domain.ErrNotFound if no such event exists.
	GetEvent(ctx context.Context, id int64) (*event.Event, error)

	// ListEvents returns all stored events, optionally filtered by owner
	// (empty owner means no filter), ordered by ID.
	ListEvents(ctx context.Context, owner string) ([]event.Event, error)

	// DeleteEvent removes a stored event by ID.
	// Returns domain.ErrNotFound if no such event exists.
	DeleteEvent(ctx context.Context, id int64) error

	// Agenda merges stored events with subscribed feed occurrences over the
	// inclusive [from, to] date range, ordered by date then start time.
	Agenda(ctx context.Context, from, to date.Date) ([]event.Occurrence, error)

	// RefreshFeeds re-fetches all subscribed feeds and replaces the cached
	// occurrence window. Individual feed failures are logged and skipped;
	// the error reports only request-level failures.
	RefreshFeeds(ctx context.Context) error
}
