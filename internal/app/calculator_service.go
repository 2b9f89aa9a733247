// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/chronod/internal/domain/clock"
	"github.com/jsamuelsen11/chronod/internal/domain/date"
	"github.com/jsamuelsen11/chronod/internal/domain/unit"
	"github.com/jsamuelsen11/chronod/internal/ports"
)

// Compile-time check that CalculatorService implements ports.CalculatorService.
var _ ports.CalculatorService = (*CalculatorService)(nil)

// CalculatorService implements ports.CalculatorService. It parses
// caller-supplied text into domain values, delegates the arithmetic to the
// domain packages, and adds structured logging. It holds no state between
// calls.
type CalculatorService struct {
	logger *slog.Logger
}

// NewCalculatorService creates a CalculatorService. The logger is used for
// structured request/error logging; a nil logger discards output.
func NewCalculatorService(logger *slog.Logger) *CalculatorService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CalculatorService{logger: logger}
}

// DateDiff parses both dates and returns the whole-day count alongside the
// signed second difference.
func (s *CalculatorService) DateDiff(ctx context.Context, start, end string) (*ports.DateDiff, error) {
	s.logger.InfoContext(ctx, "computing date difference",
		slog.String("start", start),
		slog.String("end", end),
	)

	from, err := date.Parse(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse start date",
			slog.String("operation", "DateDiff"),
			slog.String("value", start),
			slog.Any("error", err),
		)
		return nil, err
	}

	to, err := date.Parse(end)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse end date",
			slog.String("operation", "DateDiff"),
			slog.String("value", end),
			slog.Any("error", err),
		)
		return nil, err
	}

	days, err := date.DaysBetween(from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compute day count",
			slog.String("operation", "DateDiff"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.DateDiff{
		Days:    days,
		Seconds: date.SecondsBetween(from, to),
	}, nil
}

// DateAdd parses the date, shifts it by the signed amount in the given unit,
// and returns the canonical text of the result.
func (s *CalculatorService) DateAdd(ctx context.Context, text string, amount int, u date.Unit) (string, error) {
	s.logger.InfoContext(ctx, "shifting date",
		slog.String("date", text),
		slog.Int("amount", amount),
		slog.String("unit", u.String()),
	)

	d, err := date.Parse(text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse date",
			slog.String("operation", "DateAdd"),
			slog.String("value", text),
			slog.Any("error", err),
		)
		return "", err
	}

	shifted, err := date.AddInterval(d, amount, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to shift date",
			slog.String("operation", "DateAdd"),
			slog.Any("error", err),
		)
		return "", err
	}

	return shifted.String(), nil
}

// TimeGap parses both times and returns the elapsed seconds between them
// within one wall-clock day.
func (s *CalculatorService) TimeGap(ctx context.Context, start, end string) (int, error) {
	s.logger.InfoContext(ctx, "computing time gap",
		slog.String("start", start),
		slog.String("end", end),
	)

	from, err := clock.Parse(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse start time",
			slog.String("operation", "TimeGap"),
			slog.String("value", start),
			slog.Any("error", err),
		)
		return 0, err
	}

	to, err := clock.Parse(end)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse end time",
			slog.String("operation", "TimeGap"),
			slog.String("value", end),
			slog.Any("error", err),
		)
		return 0, err
	}

	gap, err := clock.Gap(from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to compute time gap",
			slog.String("operation", "TimeGap"),
			slog.Any("error", err),
		)
		return 0, err
	}

	return gap, nil
}

// TimeAdd parses the time, shifts it by the signed amount in the given unit,
// and returns the formatted duration text.
func (s *CalculatorService) TimeAdd(ctx context.Context, text string, amount int, u clock.Unit) (string, error) {
	s.logger.InfoContext(ctx, "shifting time",
		slog.String("time", text),
		slog.Int("amount", amount),
		slog.String("unit", u.String()),
	)

	t, err := clock.Parse(text)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to parse time",
			slog.String("operation", "TimeAdd"),
			slog.String("value", text),
			slog.Any("error", err),
		)
		return "", err
	}

	shifted, err := clock.AddInterval(t, amount, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to shift time",
			slog.String("operation", "TimeAdd"),
			slog.Any("error", err),
		)
		return "", err
	}

	return shifted, nil
}

// Convert rescales amount between two time units.
func (s *CalculatorService) Convert(ctx context.Context, amount float64, from, to unit.Unit) (float64, error) {
	s.logger.InfoContext(ctx, "converting units",
		slog.Float64("amount", amount),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	converted, err := unit.Convert(amount, from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to convert units",
			slog.String("operation", "Convert"),
			slog.Any("error", err),
		)
		return 0, err
	}

	return converted, nil
}
