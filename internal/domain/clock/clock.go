// Package clock implements wall-clock time parsing and arithmetic. A Time is
// a pure hour/minute/second value with no date component. Increment results
// use elapsed-duration semantics: additions that pass midnight report an
// explicit day count instead of wrapping around to the same day.
package clock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/chronod/internal/domain"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	secondsPerDay    = 24 * 60 * 60
)

const clockFields = 3

// Time is a time of day. Fields hold whatever integers parsing produced;
// range normalization happens in duration arithmetic, not at parse time.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// Parse splits HH:MM:SS text on ":" into exactly three integer fields.
// It fails with an error wrapping domain.ErrFormat on a wrong field count or
// a non-numeric field. Out-of-range values are not rejected here: digits are
// parsed as plain base-10 integers (leading zeros carry no octal meaning)
// and downstream arithmetic normalizes any carry.
func Parse(text string) (Time, error) {
	parts := strings.Split(text, ":")
	if len(parts) != clockFields {
		return Time{}, fmt.Errorf("%w: %q is not a valid HH:MM:SS time", domain.ErrFormat, text)
	}

	fields := make([]int, clockFields)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q is not a valid HH:MM:SS time", domain.ErrFormat, text)
		}
		fields[i] = n
	}

	return Time{Hour: fields[0], Minute: fields[1], Second: fields[2]}, nil
}

// String renders the canonical zero-padded HH:MM:SS form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// SecondsSinceMidnight returns the time of day as elapsed seconds, with
// 00:00:00 as zero.
func (t Time) SecondsSinceMidnight() int {
	return t.Hour*secondsPerHour + t.Minute*secondsPerMinute + t.Second
}

// After reports whether t is strictly later in the day than other, comparing
// normalized seconds-since-midnight totals. For in-range fields this matches
// a lexicographic hour/minute/second comparison; for the out-of-range fields
// Parse admits, the carry-normalized total is the ordering that counts, so
// 00:90:00 sorts after 01:00:00.
func (t Time) After(other Time) bool {
	return t.SecondsSinceMidnight() > other.SecondsSinceMidnight()
}

// Gap returns the elapsed seconds from start to end within one wall-clock
// day. It fails with an error wrapping domain.ErrOrder when start is strictly
// later than end; equal times return 0.
func Gap(start, end Time) (int, error) {
	if start.After(end) {
		return 0, fmt.Errorf("%w: start time %s is after end time %s", domain.ErrOrder, start, end)
	}
	return end.SecondsSinceMidnight() - start.SecondsSinceMidnight(), nil
}

// AddInterval shifts t by the signed amount expressed in the given unit and
// returns the formatted result. The sum is treated as an elapsed duration,
// not a wall-clock wraparound: totals inside one day render as H:MM:SS (hour
// not zero-padded), and totals that overflow one or more full days carry an
// explicit day-count prefix, e.g. "1 day(s), 0:10:00". Negative totals
// normalize the same way with a negative day count. Fails with
// domain.ErrUnknownUnit when u is not part of the enumeration.
func AddInterval(t Time, amount int, u Unit) (string, error) {
	mult, ok := u.seconds()
	if !ok {
		return "", fmt.Errorf("%w: %q is not a time increment unit", domain.ErrUnknownUnit, u)
	}

	total := t.SecondsSinceMidnight() + amount*mult
	return formatDuration(total), nil
}

// formatDuration renders an elapsed-seconds total as H:MM:SS, with a
// "N day(s), " prefix whenever the total does not fall inside day zero.
func formatDuration(total int) string {
	days := total / secondsPerDay
	rem := total % secondsPerDay
	if rem < 0 {
		days--
		rem += secondsPerDay
	}

	h := rem / secondsPerHour
	m := (rem % secondsPerHour) / secondsPerMinute
	s := rem % secondsPerMinute

	if days == 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d day(s), %d:%02d:%02d", days, h, m, s)
}
