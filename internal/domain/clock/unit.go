package clock

// Unit names an increment unit accepted by AddInterval. The constant values
// are the wire-level tags the form layer has always used.
type Unit string

const (
	UnitSeconds Unit = "sec"
	UnitMinutes Unit = "min"
	UnitHours   Unit = "hrs"
)

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
func (u Unit) seconds() (int, bool) {
	switch u {
	case UnitSeconds:
		return 1, true
	case UnitMinutes:
		return secondsPerMinute, true
	case UnitHours:
		return secondsPerHour, true
	default:
		return 0, false
	}
}
