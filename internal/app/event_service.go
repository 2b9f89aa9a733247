package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jsamuelsen11/chronod/internal/domain"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// Compile-time check that EventService implements ports.EventService.
var _ ports.EventService = (*EventService)(nil)

// localSource identifies registry-stored events in merged agenda output, as
// opposed to occurrences that came from a subscribed feed.
const localSource = "registry"

// EventService implements ports.EventService with an in-memory registry.
// Events live for the process lifetime only; the agenda view merges them with
// the latest cached snapshot of the subscribed feeds.
type EventService struct {
	feedClient  ports.FeedClient
	logger      *slog.Logger
	horizonDays int

	mu      sync.RWMutex
	events  map[int64]*event.Event
	nextID  int64
	feedOcc []event.Occurrence
}

// NewEventService creates an EventService. The feed client supplies external
// calendar occurrences; horizonDays bounds how far ahead RefreshFeeds caches
// them. A nil logger discards output.
func NewEventService(feedClient ports.FeedClient, horizonDays int, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EventService{
		feedClient:  feedClient,
		logger:      logger,
		horizonDays: horizonDays,
		events:      make(map[int64]*event.Event),
	}
}

// CreateEvent validates and stores a new event, returning it with a
// server-assigned ID and creation time.
func (s *EventService) CreateEvent(ctx context.Context, ev *event.Event) (*event.Event, error) {
	s.logger.InfoContext(ctx, "creating event", slog.String("name", ev.Name))

	if err := ev.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *ev
	stored.ID = s.nextID
	stored.CreatedAt = time.Now().UTC()
	s.events[stored.ID] = &stored

	created := stored
	return &created, nil
}

// GetEvent returns a stored event by ID.
func (s *EventService) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	s.logger.InfoContext(ctx, "fetching event", slog.Int64("id", id))

	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	if !ok {
		s.logger.ErrorContext(ctx, "event not found",
			slog.String("operation", "GetEvent"),
			slog.Int64("id", id),
		)
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}

	out := *ev
	return &out, nil
}

// ListEvents returns all stored events, optionally filtered by owner, ordered
// by ID.
func (s *EventService) ListEvents(ctx context.Context, owner string) ([]event.Event, error) {
	s.logger.InfoContext(ctx, "listing events", slog.String("owner", owner))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Event, 0, len(s.events))
	for _, ev := range s.events {
		if owner != "" && ev.Owner != owner {
			continue
		}
		out = append(out, *ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteEvent removes a stored event by ID.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting event", slog.Int64("id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		s.logger.ErrorContext(ctx, "event not found",
			slog.String("operation", "DeleteEvent"),
			slog.Int64("id", id),
		)
		return fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}
	delete(s.events, id)
	return nil
}

// Agenda merges stored events with the cached feed occurrences over the
// inclusive [from, to] range, ordered by date then start time. Events marked
// recurring reappear on their month and day in every year of the range.
func (s *EventService) Agenda(ctx context.Context, from, to date.Date) ([]event.Occurrence, error) {
	s.logger.InfoContext(ctx, "building agenda",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	if to.Before(from) {
		s.logger.ErrorContext(ctx, "agenda range reversed",
			slog.String("operation", "Agenda"),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		return nil, fmt.Errorf("agenda range %s..%s: %w", from, to, domain.ErrOrder)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	occs := make([]event.Occurrence, 0, len(s.events)+len(s.feedOcc))
	for _, ev := range s.events {
		for _, d := range occurrenceDates(ev, from, to) {
			occs = append(occs, event.Occurrence{
				SourceID: localSource,
				UID:      fmt.Sprintf("event-%d", ev.ID),
				Name:     ev.Name,
				Date:     d,
				Start:    ev.Start,
				End:      ev.End,
			})
		}
	}
	for _, occ := range s.feedOcc {
		if inRange(occ.Date, from, to) {
			occs = append(occs, occ)
		}
	}

	sort.SliceStable(occs, func(i, j int) bool {
		if !occs[i].Date.Equal(occs[j].Date) {
			return occs[i].Date.Before(occs[j].Date)
		}
		return occs[i].Start.SecondsSinceMidnight() < occs[j].Start.SecondsSinceMidnight()
	})
	return occs, nil
}

// RefreshFeeds re-fetches all subscribed feeds over the configured horizon
// and replaces the cached occurrence window. Individual feed failures are
// logged and skipped.
func (s *EventService) RefreshFeeds(ctx context.Context) error {
	now := time.Now().UTC()
	from := date.New(now.Year(), now.Month(), now.Day())
	to, err := date.AddInterval(from, s.horizonDays, date.UnitDays)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "refreshing feeds",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	occs, errs := s.feedClient.FetchOccurrences(ctx, from, to)
	for _, ferr := range errs {
		s.logger.ErrorContext(ctx, "feed fetch failed",
			slog.String("operation", "RefreshFeeds"),
			slog.Any("error", ferr),
		)
	}
	if len(occs) == 0 && len(errs) > 0 {
		return fmt.Errorf("refresh feeds: all %d feeds failed", len(errs))
	}

	s.mu.Lock()
	s.feedOcc = occs
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "feed cache replaced",
		slog.Int("occurrences", len(occs)),
		slog.Int("failed_feeds", len(errs)),
	)
	return nil
}

// occurrenceDates returns the dates on which ev appears within [from, to].
// Non-recurring events appear at most once, on their own date. Recurring
// events repeat yearly on the same month and day, never before the original
// date.
func occurrenceDates(ev *event.Event, from, to date.Date) []date.Date {
	if !ev.Recurring {
		if inRange(ev.Date, from, to) {
			return []date.Date{ev.Date}
		}
		return nil
	}

	var dates []date.Date
	for year := from.Year; year <= to.Year; year++ {
		d := date.New(year, ev.Date.Month, ev.Date.Day)
		if d.Before(ev.Date) || !inRange(d, from, to) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func inRange(d, from, to date.Date) bool {
	return !d.Before(from) && !to.Before(d)
}
