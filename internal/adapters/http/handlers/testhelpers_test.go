package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

var testTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validEvent() *event.Event {
	return &event.Event{
		ID:        1,
		Owner:     "alice",
		Name:      "Dentist",
		Type:      event.TypeAppointment,
		Date:      date.New(2026, time.September, 10),
		Start:     clock.Time{Hour: 9},
		End:       clock.Time{Hour: 10},
		CreatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// stubCalculatorService implements ports.CalculatorService with
// per-operation function fields. Unset fields panic so that tests fail
// loudly on unexpected calls.
type stubCalculatorService struct {
	dateDiff func(ctx context.Context, start, end string) (*ports.DateDiff, error)
	dateAdd  func(ctx context.Context, text string, amount int, u date.Unit) (string, error)
	timeGap  func(ctx context.Context, start, end string) (int, error)
	timeAdd  func(ctx context.Context, text string, amount int, u clock.Unit) (string, error)
	convert  func(ctx context.Context, amount float64, from, to unit.Unit) (float64, error)
}

var _ ports.CalculatorService = (*stubCalculatorService)(nil)

func (s *stubCalculatorService) DateDiff(ctx context.Context, start, end string) (*ports.DateDiff, error) {
	return s.dateDiff(ctx, start, end)
}

func (s *stubCalculatorService) DateAdd(ctx context.Context, text string, amount int, u date.Unit) (string, error) {
	return s.dateAdd(ctx, text, amount, u)
}

func (s *stubCalculatorService) TimeGap(ctx context.Context, start, end string) (int, error) {
	return s.timeGap(ctx, start, end)
}

func (s *stubCalculatorService) TimeAdd(ctx context.Context, text string, amount int, u clock.Unit) (string, error) {
	return s.timeAdd(ctx, text, amount, u)
}

func (s *stubCalculatorService) Convert(ctx context.Context, amount float64, from, to unit.Unit) (float64, error) {
	return s.convert(ctx, amount, from, to)
}

// stubEventService implements ports.EventService the same way.
type stubEventService struct {
	createEvent  func(ctx context.Context, ev *event.Event) (*event.Event, error)
	getEvent     func(ctx context.Context, id int64) (*event.Event, error)
	listEvents   func(ctx context.Context, owner string) ([]event.Event, error)
	deleteEvent  func(ctx context.Context, id int64) error
	agenda       func(ctx context.Context, from, to date.Date) ([]event.Occurrence, error)
	refreshFeeds func(ctx context.Context) error
}

var _ ports.EventService = (*stubEventService)(nil)

func (s *stubEventService) CreateEvent(ctx context.Context, ev *event.Event) (*event.Event, error) {
	return s.createEvent(ctx, ev)
}

func (s *stubEventService) GetEvent(ctx context.Context, id int64) (*event.Event, error) {
	return s.getEvent(ctx, id)
}

func (s *stubEventService) ListEvents(ctx context.Context, owner string) ([]event.Event, error) {
	return s.listEvents(ctx, owner)
}

func (s *stubEventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.deleteEvent(ctx, id)
}

func (s *stubEventService) Agenda(ctx context.Context, from, to date.Date) ([]event.Occurrence, error) {
	return s.agenda(ctx, from, to)
}

func (s *stubEventService) RefreshFeeds(ctx context.Context) error {
	return s.refreshFeeds(ctx)
}

// stubHealthRegistry implements ports.HealthRegistry backed by a fixed
// result map.
type stubHealthRegistry struct {
	results map[string]error
}

var _ ports.HealthRegistry = (*stubHealthRegistry)(nil)

func (s *stubHealthRegistry) Register(ports.HealthChecker) {}

func (s *stubHealthRegistry) CheckAll(context.Context) map[string]error {
	return s.results
}
