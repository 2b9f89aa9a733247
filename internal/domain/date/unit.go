package date

// Unit names an interval unit accepted by AddInterval. The constant values
// are the wire-level tags the form layer has always used.
type Unit string

const (
	UnitDays   Unit = "day(s)"
	UnitWeeks  Unit = "week(s)"
	UnitMonths Unit = "month(s)"
	UnitYears  Unit = "year(s)"
)

// Per-unit day multipliers. Months and years are fixed-length approximations,
// kept bit-for-bit compatible with the historical outputs.
const (
	daysPerWeek  = 7
	daysPerMonth = 30
	daysPerYear  = 365
)

// IsValid returns true if the unit is one of the defined constants.
func (u Unit) IsValid() bool {
	_, ok := u.days()
	return ok
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// days returns the day multiplier for the unit and whether the unit is known.
func (u Unit) days() (int, bool) {
	switch u {
	case UnitDays:
		return 1, true
	case UnitWeeks:
		return daysPerWeek, true
	case UnitMonths:
		return daysPerMonth, true
	case UnitYears:
		return daysPerYear, true
	default:
		return 0, false
	}
}
