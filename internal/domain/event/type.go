package event

// Type categorizes a calendar event.
type Type string

const (
	TypeBirthday    Type = "birthday"
	TypeAnniversary Type = "anniversary"
	TypeAppointment Type = "appointment"
	TypeMeeting     Type = "meeting"
	TypeOther       Type = "other"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeBirthday, TypeAnniversary, TypeAppointment, TypeMeeting, TypeOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
