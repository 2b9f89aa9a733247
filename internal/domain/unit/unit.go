// Package unit implements scalar conversion between time units using fixed
// multipliers. There is no calendar awareness here: a month does not exist as
// a unit, a year is exactly 365 days, and no leap-year adjustment is applied.
package unit

import (
	"fmt"
	"math"

	"github.com/jsamuelsen11/chronod/internal/domain"
)

// Unit names a convertible time unit. The constant values are the wire-level
// tags the form layer has always used.
type Unit string

const (
	Seconds Unit = "sec"
	Minutes Unit = "min"
	Hours   Unit = "hour"
	Days    Unit = "day(s)"
	Weeks   Unit = "week(s)"
	Years   Unit = "year(s)"
)

// Seconds-per-unit constants. The year is a fixed 365-day year.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
	secondsPerDay    = 24 * 60 * 60
	secondsPerWeek   = 7 * 24 * 60 * 60
	secondsPerYear   = 365 * 24 * 60 * 60
)

const roundingScale = 1000 // 3 decimal places for human-facing outputs

// IsValid returns true if the unit is one of the defined constants.
func (u Unit) IsValid() bool {
	_, ok := u.seconds()
	return ok
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// seconds returns the seconds multiplier for the unit and whether the unit
// is known.
func (u Unit) seconds() (float64, bool) {
	switch u {
	case Seconds:
		return 1, true
	case Minutes:
		return secondsPerMinute, true
	case Hours:
		return secondsPerHour, true
	case Days:
		return secondsPerDay, true
	case Weeks:
		return secondsPerWeek, true
	case Years:
		return secondsPerYear, true
	default:
		return 0, false
	}
}

// Convert rescales amount from one unit to another: the amount is multiplied
// by the seconds-per-from constant to obtain a canonical seconds value, then
// divided by the seconds-per-to constant. Results for non-second target units
// are rounded to 3 decimal places; results in seconds are returned unrounded.
// Fails with domain.ErrUnknownUnit when either unit tag is not part of the
// enumeration.
func Convert(amount float64, from, to Unit) (float64, error) {
	fromSec, ok := from.seconds()
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a conversion unit", domain.ErrUnknownUnit, from)
	}
	toSec, ok := to.seconds()
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a conversion unit", domain.ErrUnknownUnit, to)
	}

	result := amount * fromSec / toSec
	if to == Seconds {
		return result, nil
	}
	return round3(result), nil
}

// round3 rounds half away from zero to 3 decimal places.
func round3(x float64) float64 {
	return math.Round(x*roundingScale) / roundingScale
}
