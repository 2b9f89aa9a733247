package unit

import (
	"errors"
	"math"
	"testing"

	"github.com/jsamuelsen11/chronod/internal/domain"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		from, to Unit
		want     float64
	}{
		{name: "seconds to hours", amount: 3600, from: Seconds, to: Hours, want: 1.0},
		{name: "one year in days", amount: 1, from: Years, to: Days, want: 365.0},
		{name: "minutes to seconds", amount: 2.5, from: Minutes, to: Seconds, want: 150},
		{name: "hours to minutes", amount: 1.5, from: Hours, to: Minutes, want: 90},
		{name: "days to weeks rounds to 3 places", amount: 10, from: Days, to: Weeks, want: 1.429},
		{name: "seconds to years rounds to 3 places", amount: 100000000, from: Seconds, to: Years, want: 3.171},
		{name: "week in days", amount: 1, from: Weeks, to: Days, want: 7},
		{name: "seconds target is unrounded", amount: 1, from: Seconds, to: Seconds, want: 1},
		{name: "fractional seconds pass through", amount: 0.0001, from: Seconds, to: Seconds, want: 0.0001},
		{name: "zero amount", amount: 0, from: Years, to: Seconds, want: 0},
		{name: "negative amount", amount: -2, from: Hours, to: Minutes, want: -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Convert(tt.amount, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert(%v, %s, %s) error = %v", tt.amount, tt.from, tt.to, err)
			}
			if !almostEqual(got, tt.want) {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	t.Parallel()

	if _, err := Convert(1, Unit("month(s)"), Seconds); !errors.Is(err, domain.ErrUnknownUnit) {
		t.Errorf("Convert with unknown source unit error = %v, want ErrUnknownUnit", err)
	}
	if _, err := Convert(1, Seconds, Unit("eons")); !errors.Is(err, domain.ErrUnknownUnit) {
		t.Errorf("Convert with unknown target unit error = %v, want ErrUnknownUnit", err)
	}
}

// Converting a value to the same unit must be the identity within rounding.
func TestConvert_Identity(t *testing.T) {
	t.Parallel()

	units := []Unit{Seconds, Minutes, Hours, Days, Weeks, Years}
	for _, u := range units {
		got, err := Convert(42, u, u)
		if err != nil {
			t.Fatalf("Convert(42, %s, %s) error = %v", u, u, err)
		}
		if !almostEqual(got, 42) {
			t.Errorf("Convert(42, %s, %s) = %v, want identity", u, u, got)
		}
	}
}

// Converting there and back must return the original value within the
// 3-decimal rounding tolerance of the intermediate result.
func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	units := []Unit{Seconds, Minutes, Hours, Days, Weeks, Years}
	for _, a := range units {
		for _, b := range units {
			mid, err := Convert(6, a, b)
			if err != nil {
				t.Fatalf("Convert(6, %s, %s) error = %v", a, b, err)
			}
			back, err := Convert(mid, b, a)
			if err != nil {
				t.Fatalf("Convert(%v, %s, %s) error = %v", mid, b, a, err)
			}
			// The intermediate value loses up to 0.0005 of a b-unit; scale
			// that back into a-units for the comparison bound.
			aSec, _ := a.seconds()
			bSec, _ := b.seconds()
			bound := 0.0015 * bSec / aSec
			if bound < tolerance {
				bound = tolerance
			}
			if math.Abs(back-6) > bound {
				t.Errorf("round trip %s -> %s -> %s: got %v, want 6 within %v", a, b, a, back, bound)
			}
		}
	}
}

func TestUnit_IsValid(t *testing.T) {
	t.Parallel()

	for _, u := range []Unit{Seconds, Minutes, Hours, Days, Weeks, Years} {
		if !u.IsValid() {
			t.Errorf("Unit(%q).IsValid() = false, want true", u)
		}
	}
	for _, u := range []Unit{"", "month(s)", "hrs", "Sec"} {
		if u.IsValid() {
			t.Errorf("Unit(%q).IsValid() = true, want false", u)
		}
	}
}
