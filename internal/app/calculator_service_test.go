package app

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/jsamuelsen11/chronod/internal/domain"
	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// --- NewCalculatorService ---

func TestNewCalculatorService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewCalculatorService(nil)
	if svc.logger == nil {
		t.Fatal("NewCalculatorService(nil) should create a no-op logger, got nil")
	}
}

// --- DateDiff ---

func TestCalculatorService_DateDiff(t *testing.T) {
	t.Parallel()

	t.Run("returns both measures on success", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.DateDiff(context.Background(), "2023-01-01", "2023-01-31")
		if err != nil {
			t.Fatalf("DateDiff() error = %v, want nil", err)
		}
		if got.Days != 30 {
			t.Errorf("Days = %d, want 30", got.Days)
		}
		if got.Seconds != -30*24*3600 {
			t.Errorf("Seconds = %v, want %v", got.Seconds, -30*24*3600)
		}
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.DateDiff(context.Background(), "01/01/2023", "2023-01-31")
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("DateDiff() error = %v, want ErrFormat", err)
		}
	})

	t.Run("rejects malformed end date", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.DateDiff(context.Background(), "2023-01-01", "not-a-date")
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("DateDiff() error = %v, want ErrFormat", err)
		}
	})

	t.Run("rejects end before start", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.DateDiff(context.Background(), "2023-01-31", "2023-01-01")
		if !errors.Is(err, domain.ErrOrder) {
			t.Errorf("DateDiff() error = %v, want ErrOrder", err)
		}
	})
}

// --- DateAdd ---

func TestCalculatorService_DateAdd(t *testing.T) {
	t.Parallel()

	t.Run("shifts forward by weeks", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.DateAdd(context.Background(), "2023-01-01", 2, date.UnitWeeks)
		if err != nil {
			t.Fatalf("DateAdd() error = %v, want nil", err)
		}
		if got != "2023-01-15" {
			t.Errorf("DateAdd() = %q, want %q", got, "2023-01-15")
		}
	})

	t.Run("shifts backward by days", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.DateAdd(context.Background(), "2023-01-01", -1, date.UnitDays)
		if err != nil {
			t.Fatalf("DateAdd() error = %v, want nil", err)
		}
		if got != "2022-12-31" {
			t.Errorf("DateAdd() = %q, want %q", got, "2022-12-31")
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.DateAdd(context.Background(), "2023-13-99", 1, date.UnitDays)
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("DateAdd() error = %v, want ErrFormat", err)
		}
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.DateAdd(context.Background(), "2023-01-01", 1, date.Unit("fortnights"))
		if !errors.Is(err, domain.ErrUnknownUnit) {
			t.Errorf("DateAdd() error = %v, want ErrUnknownUnit", err)
		}
	})
}

// --- TimeGap ---

func TestCalculatorService_TimeGap(t *testing.T) {
	t.Parallel()

	t.Run("returns elapsed seconds on success", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.TimeGap(context.Background(), "09:00:00", "11:30:15")
		if err != nil {
			t.Fatalf("TimeGap() error = %v, want nil", err)
		}
		if got != 9015 {
			t.Errorf("TimeGap() = %d, want 9015", got)
		}
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.TimeGap(context.Background(), "9am", "11:30:15")
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("TimeGap() error = %v, want ErrFormat", err)
		}
	})

	t.Run("rejects start after end", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.TimeGap(context.Background(), "12:00:00", "11:00:00")
		if !errors.Is(err, domain.ErrOrder) {
			t.Errorf("TimeGap() error = %v, want ErrOrder", err)
		}
	})
}

// --- TimeAdd ---

func TestCalculatorService_TimeAdd(t *testing.T) {
	t.Parallel()

	t.Run("formats result within the day", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.TimeAdd(context.Background(), "09:00:00", 90, clock.UnitMinutes)
		if err != nil {
			t.Fatalf("TimeAdd() error = %v, want nil", err)
		}
		if got != "10:30:00" {
			t.Errorf("TimeAdd() = %q, want %q", got, "10:30:00")
		}
	})

	t.Run("formats day overflow", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.TimeAdd(context.Background(), "23:50:00", 20, clock.UnitMinutes)
		if err != nil {
			t.Fatalf("TimeAdd() error = %v, want nil", err)
		}
		if got != "1 day(s), 0:10:00" {
			t.Errorf("TimeAdd() = %q, want %q", got, "1 day(s), 0:10:00")
		}
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.TimeAdd(context.Background(), "23.50.00", 20, clock.UnitMinutes)
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("TimeAdd() error = %v, want ErrFormat", err)
		}
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.TimeAdd(context.Background(), "09:00:00", 1, clock.Unit("days"))
		if !errors.Is(err, domain.ErrUnknownUnit) {
			t.Errorf("TimeAdd() error = %v, want ErrUnknownUnit", err)
		}
	})
}

// --- Convert ---

func TestCalculatorService_Convert(t *testing.T) {
	t.Parallel()

	t.Run("rescales between units", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		got, err := svc.Convert(context.Background(), 3600, unit.Seconds, unit.Hours)
		if err != nil {
			t.Fatalf("Convert() error = %v, want nil", err)
		}
		if math.Abs(got-1) > 1e-12 {
			t.Errorf("Convert() = %v, want 1", got)
		}
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		t.Parallel()
		svc := NewCalculatorService(discardLogger())

		_, err := svc.Convert(context.Background(), 1, unit.Unit("lightyears"), unit.Seconds)
		if !errors.Is(err, domain.ErrUnknownUnit) {
			t.Errorf("Convert() error = %v, want ErrUnknownUnit", err)
		}
	})
}
