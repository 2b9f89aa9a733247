// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/chronod/internal/domain/event"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// DateDiffResponse carries both difference measures for a date pair. Days
// counts whole days from start to end; Seconds keeps the historical reversed
// subtrahend order, so a forward range yields a negative value.
type DateDiffResponse struct {
	Days    int     `json:"days"`
	Seconds float64 `json:"seconds"`
}

// ToDateDiffResponse converts a ports.DateDiff to an HTTP response DTO.
func ToDateDiffResponse(d *ports.DateDiff) DateDiffResponse {
	return DateDiffResponse{
		Days:    d.Days,
		Seconds: d.Seconds,
	}
}

// DateAddResponse carries the shifted date in canonical YYYY-MM-DD form.
type DateAddResponse struct {
	Date string `json:"date"`
}

// TimeGapResponse carries the elapsed seconds between two clock times.
type TimeGapResponse struct {
	Seconds int `json:"seconds"`
}

// TimeAddResponse carries the shifted time as formatted duration text,
// prefixed with a day count when the addition crosses midnight.
type TimeAddResponse struct {
	Time string `json:"time"`
}

// ConvertResponse carries the rescaled amount and its target unit tag.
type ConvertResponse struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// EventResponse represents a single stored calendar event in HTTP responses.
type EventResponse struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Recurring bool   `json:"recurring"`
	CreatedAt string `json:"created_at"`
}

// ToEventResponse converts a domain Event entity to an HTTP response DTO.
func ToEventResponse(ev *event.Event) EventResponse {
	return EventResponse{
		ID:        ev.ID,
		Owner:     ev.Owner,
		Name:      ev.Name,
		Type:      ev.Type.String(),
		Date:      ev.Date.String(),
		Start:     ev.Start.String(),
		End:       ev.End.String(),
		Recurring: ev.Recurring,
		CreatedAt: ev.CreatedAt.Format(time.RFC3339),
	}
}

// EventListResponse represents a list of stored events in HTTP responses.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// ToEventListResponse converts a slice of domain Event entities to an HTTP
// list response DTO.
func ToEventListResponse(events []event.Event) EventListResponse {
	items := make([]EventResponse, len(events))
	for i := range events {
		items[i] = ToEventResponse(&events[i])
	}
	return EventListResponse{
		Events: items,
		Count:  len(items),
	}
}

// OccurrenceResponse represents one concrete agenda entry, either a stored
// event or an expanded feed instance.
type OccurrenceResponse struct {
	SourceID string `json:"source_id,omitempty"`
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	AllDay   bool   `json:"all_day"`
}

// ToOccurrenceResponse converts a domain Occurrence to an HTTP response DTO.
func ToOccurrenceResponse(o *event.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		SourceID: o.SourceID,
		UID:      o.UID,
		Name:     o.Name,
		Location: o.Location,
		Date:     o.Date.String(),
		Start:    o.Start.String(),
		End:      o.End.String(),
		AllDay:   o.AllDay,
	}
}

// AgendaResponse represents a merged agenda window in HTTP responses.
type AgendaResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
	Count       int                  `json:"count"`
}

// ToAgendaResponse converts a slice of domain Occurrences to an HTTP
// response DTO.
func ToAgendaResponse(occs []event.Occurrence) AgendaResponse {
	items := make([]OccurrenceResponse, len(occs))
	for i := range occs {
		items[i] = ToOccurrenceResponse(&occs[i])
	}
	return AgendaResponse{
		Occurrences: items,
		Count:       len(items),
	}
}
