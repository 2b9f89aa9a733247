package feeds

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/event"
)

// maxOccurrencesPerEvent caps how many instances a single recurring event may
// contribute, guarding against pathological rules.
const maxOccurrencesPerEvent = 1000

// expandOccurrences turns parsed events into concrete domain occurrences
// inside the inclusive [from, to] date range. Recurring events are expanded
// via their RRULE with EXDATEs removed and RECURRENCE-ID overrides applied.
func expandOccurrences(events []parsedEvent, from, to date.Date) []event.Occurrence {
	// Overrides replace individual instances of the base event sharing
	// their UID.
	overrides := make(map[string][]parsedEvent)
	var bases []parsedEvent
	for _, ev := range events {
		if ev.recurrenceID != nil {
			overrides[ev.uid] = append(overrides[ev.uid], ev)
			continue
		}
		bases = append(bases, ev)
	}

	rangeStart := from.Time()
	rangeEnd := to.Time().Add(24*time.Hour - time.Second)

	var out []event.Occurrence
	for _, ev := range bases {
		if ev.rawRRule == "" {
			if ev.start.Before(rangeStart) || ev.start.After(rangeEnd) {
				continue
			}
			out = append(out, makeOccurrence(ev, ev.start, ev.end))
			continue
		}
		out = append(out, expandRecurring(ev, overrides[ev.uid], rangeStart, rangeEnd)...)
	}
	return out
}

func expandRecurring(ev parsedEvent, overrides []parsedEvent, rangeStart, rangeEnd time.Time) []event.Occurrence {
	r, err := rrule.StrToRRule(ev.rawRRule)
	if err != nil {
		return nil
	}
	r.DTStart(ev.start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.exDates {
		set.ExDate(ex.In(ev.start.Location()))
	}

	duration := ev.end.Sub(ev.start)
	times := set.Between(rangeStart.In(ev.start.Location()), rangeEnd.In(ev.start.Location()), true)
	if len(times) > maxOccurrencesPerEvent {
		times = times[:maxOccurrencesPerEvent]
	}

	out := make([]event.Occurrence, 0, len(times))
	for _, start := range times {
		end := start.Add(duration)
		src := ev
		if o, ok := findOverride(overrides, start); ok {
			src = o
			start = o.start
			end = o.end
		}
		out = append(out, makeOccurrence(src, start, end))
	}
	return out
}

// findOverride returns the override whose RECURRENCE-ID matches the instance
// start, with exact time equality.
func findOverride(overrides []parsedEvent, instanceStart time.Time) (parsedEvent, bool) {
	for _, ov := range overrides {
		if ov.recurrenceID != nil && ov.recurrenceID.Equal(instanceStart) {
			return ov, true
		}
	}
	return parsedEvent{}, false
}

func makeOccurrence(ev parsedEvent, start, end time.Time) event.Occurrence {
	return event.Occurrence{
		SourceID: ev.sourceID,
		UID:      ev.uid,
		Name:     ev.summary,
		Location: ev.location,
		Date:     date.New(start.Year(), start.Month(), start.Day()),
		Start:    clockTime(start),
		End:      clockTime(end),
		AllDay:   ev.allDay,
	}
}

func clockTime(t time.Time) clock.Time {
	return clock.Time{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}
