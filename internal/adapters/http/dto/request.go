package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/chronod/internal/domain"
	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
)

// DateDiffRequest represents the JSON body for computing the difference
// between two calendar dates.
type DateDiffRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *DateDiffRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Start) == "" {
		fields["start"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.End) == "" {
		fields["end"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DateAddRequest represents the JSON body for shifting a calendar date by
// a signed amount of a named interval unit.
type DateAddRequest struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// Validate checks that required fields are present and the unit tag is one
// of the interval enumeration. Returns a *domain.ValidationError if any
// checks fail.
func (r *DateAddRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Date) == "" {
		fields["date"] = domain.MsgRequired
	}
	if !date.Unit(r.Unit).IsValid() {
		fields["unit"] = fmt.Sprintf("invalid: %q", r.Unit)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TimeGapRequest represents the JSON body for computing the elapsed seconds
// between two clock times within one day.
type TimeGapRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *TimeGapRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Start) == "" {
		fields["start"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.End) == "" {
		fields["end"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TimeAddRequest represents the JSON body for shifting a clock time by a
// signed amount of a named increment unit.
type TimeAddRequest struct {
	Time   string `json:"time"`
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// Validate checks that required fields are present and the unit tag is one
// of the increment enumeration. Returns a *domain.ValidationError if any
// checks fail.
func (r *TimeAddRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Time) == "" {
		fields["time"] = domain.MsgRequired
	}
	if !clock.Unit(r.Unit).IsValid() {
		fields["unit"] = fmt.Sprintf("invalid: %q", r.Unit)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ConvertRequest represents the JSON body for rescaling an amount between
// two time units.
type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// Validate checks that both unit tags are part of the conversion
// enumeration. Returns a *domain.ValidationError if any checks fail.
func (r *ConvertRequest) Validate() error {
	fields := make(map[string]string)

	if !unit.Unit(r.From).IsValid() {
		fields["from"] = fmt.Sprintf("invalid: %q", r.From)
	}
	if !unit.Unit(r.To).IsValid() {
		fields["to"] = fmt.Sprintf("invalid: %q", r.To)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateEventRequest represents the JSON body for creating a new calendar
// event. Start and end times are optional; an omitted time means midnight.
type CreateEventRequest struct {
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Recurring bool   `json:"recurring,omitempty"`
}

// Validate checks that required fields are present and enumerated fields
// have valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateEventRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Owner) == "" {
		fields["owner"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !event.Type(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	if strings.TrimSpace(r.Date) == "" {
		fields["date"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToEvent converts a validated CreateEventRequest to a domain Event. Parse
// failures on the date or time fields are reported as a
// *domain.ValidationError so that the HTTP layer renders them the same way
// as missing-field errors.
func (r *CreateEventRequest) ToEvent() (*event.Event, error) {
	fields := make(map[string]string)

	d, err := date.Parse(r.Date)
	if err != nil {
		fields["date"] = fmt.Sprintf("invalid: %q", r.Date)
	}

	var start, end clock.Time
	if r.Start != "" {
		if start, err = clock.Parse(r.Start); err != nil {
			fields["start"] = fmt.Sprintf("invalid: %q", r.Start)
		}
	}
	if r.End != "" {
		if end, err = clock.Parse(r.End); err != nil {
			fields["end"] = fmt.Sprintf("invalid: %q", r.End)
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &event.Event{
		Owner:     r.Owner,
		Name:      r.Name,
		Type:      event.Type(r.Type),
		Date:      d,
		Start:     start,
		End:       end,
		Recurring: r.Recurring,
	}, nil
}
