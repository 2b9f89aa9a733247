package feeds

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// parsedEvent is the normalized form of a single VEVENT before recurrence
// expansion. Times keep the location the calendar declared for them.
type parsedEvent struct {
	sourceID string

	uid      string
	summary  string
	location string

	start  time.Time
	end    time.Time
	allDay bool

	rawRRule string
	exDates  []time.Time

	// recurrenceID marks this VEVENT as an override for one instance of a
	// recurring event with the same UID.
	recurrenceID *time.Time
}

// parseCalendar parses an ICS payload into parsedEvents. Individual VEVENTs
// that cannot be parsed are skipped; the calendar as a whole fails only when
// the payload itself is unreadable.
func parseCalendar(sourceID string, body []byte) ([]parsedEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty calendar payload")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	events := make([]parsedEvent, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(sourceID, ve)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(sourceID string, ve *ical.VEvent) (parsedEvent, error) {
	out := parsedEvent{sourceID: sourceID}

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return out, errors.New("missing UID")
	}
	out.uid = uidProp.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.location = p.Value
	}

	// The library resolves VTIMEZONE/TZID, so these carry proper locations.
	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("event %s: %w", out.uid, err)
	}
	out.start = start
	if end, err := ve.GetEndAt(); err == nil {
		out.end = end
	} else {
		out.end = start
	}

	out.allDay = isAllDay(ve)

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.rawRRule = p.Value
	}

	// EXDATE may appear multiple times, each carrying a comma-separated list.
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out.exDates = append(out.exDates, t)
			}
		}
	}

	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		if t, err := parseICSTime(p.Value); err == nil {
			out.recurrenceID = &t
		}
	}

	return out, nil
}

// isAllDay reports whether the VEVENT's DTSTART is date-valued
// (VALUE=DATE or a value with no time component).
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// parseICSTime parses the basic ICS date/date-time forms used by EXDATE and
// RECURRENCE-ID values.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.UTC)
	default:
		return time.ParseInLocation("20060102", v, time.UTC)
	}
}
