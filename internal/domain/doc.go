// Package domain contains shared domain types used across entity sub-packages.
// The calculators live in sub-packages (domain/date, domain/clock, domain/unit)
// and the event model in domain/event. This root package holds the sentinel
// errors and validation types shared across all of them.
package domain
