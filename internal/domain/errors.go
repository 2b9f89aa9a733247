package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
//
// ErrFormat and ErrOrder are caller-recoverable: the input text was malformed
// or a chronological precondition was violated, and the caller can re-prompt.
// ErrUnknownUnit indicates a unit tag that is not part of the operation's
// enumeration; it points at a wiring bug rather than bad end-user input.
var (
	ErrFormat      = errors.New("malformed input")
	ErrOrder       = errors.New("chronological order violation")
	ErrUnknownUnit = errors.New("unknown unit")
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
)

// MsgRequired is the standard per-field message for missing required values.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
