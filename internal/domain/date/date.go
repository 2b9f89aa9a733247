// Package date implements calendar-date parsing and arithmetic. A Date is a
// pure year/month/day value with no time-of-day or timezone component; all
// arithmetic follows ordinary Gregorian calendar-day addition.
package date

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/chronod/internal/domain"
)

// Layout is the canonical text form: 4-digit year, zero-padded month and day.
const Layout = "2006-01-02"

// Date is a calendar date. The zero value is the zero time's date and is not
// generally meaningful; construct values through Parse or New.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date from its components, normalizing out-of-range values the
// way time.Date does (e.g. January 32 becomes February 1).
func New(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Parse converts canonical YYYY-MM-DD text into a Date. Text that does not
// match the layout, or that names an impossible calendar date, fails with an
// error wrapping domain.ErrFormat.
func Parse(text string) (Date, error) {
	t, err := time.Parse(Layout, text)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", domain.ErrFormat, text)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String renders the canonical YYYY-MM-DD form. Parse(d.String()) round-trips
// exactly for any valid date.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the date at midnight UTC. Midnight UTC anchoring makes day
// differences exact integer multiples of 24 hours.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is chronologically earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// Equal reports whether d and other name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// secondsPerDay is the length of a midnight-anchored UTC day in seconds.
const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the count of whole days from start to end. The
// operation is defined only for non-decreasing pairs: when end is earlier
// than start it fails with an error wrapping domain.ErrOrder. Equal dates
// return 0. The difference is taken on Unix seconds rather than
// time.Time.Sub, whose Duration result saturates near 292 years and would
// silently clamp multi-century spans.
func DaysBetween(start, end Date) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end date %s is before start date %s", domain.ErrOrder, end, start)
	}
	return int((end.Time().Unix() - start.Time().Unix()) / secondsPerDay), nil
}

// SecondsBetween returns (start - end) expressed in seconds. The subtrahend
// order is deliberately the reverse of DaysBetween and is kept for
// compatibility: the result is negative when end is chronologically after
// start. Any pair of valid dates is accepted. Computed on Unix seconds for
// the same saturation reason as DaysBetween.
func SecondsBetween(start, end Date) float64 {
	return float64(start.Time().Unix() - end.Time().Unix())
}

// AddInterval shifts d by the signed amount expressed in the given unit and
// returns the resulting date. The unit is converted to a day count with the
// fixed multipliers (weeks x7, months x30, years x365 — no real
// calendar-month or leap-year logic), then added with standard calendar
// rollover. Fails with domain.ErrUnknownUnit when u is not part of the
// enumeration.
func AddInterval(d Date, amount int, u Unit) (Date, error) {
	mult, ok := u.days()
	if !ok {
		return Date{}, fmt.Errorf("%w: %q is not a date interval unit", domain.ErrUnknownUnit, u)
	}
	t := d.Time().AddDate(0, 0, amount*mult)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}
