// Package event defines the calendar event entity and its validation rules.
package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/chronod/internal/domain"
	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
)

// Event represents a single scheduled entry on a user's calendar.
type Event struct {
	ID        int64
	Owner     string
	Name      string
	Type      Type
	Date      date.Date
	Start     clock.Time
	End       clock.Time
	Recurring bool
	CreatedAt time.Time
}

// Validate checks business rules for the Event entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (e *Event) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.Owner) == "" {
		fields["owner"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !e.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", e.Type)
	}
	if e.Start.After(e.End) {
		fields["end_time"] = fmt.Sprintf("must not be before start time %s", e.Start)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Occurrence is a single concrete calendar entry on a given day, either a
// stored Event or one expanded instance of a subscribed feed's (possibly
// recurring) event. Agenda views operate on this shape so that both sources
// merge uniformly.
type Occurrence struct {
	SourceID string // "registry" for stored events, feed name otherwise
	UID      string // feed UID or stringified event ID
	Name     string
	Location string
	Date     date.Date
	Start    clock.Time
	End      clock.Time
	AllDay   bool
}
