package statistics

import "errors"

// Statistics domain errors
var (
	// ErrInvalidQuarterConfig means a requested quarter resolves to an empty
	// month list.
	ErrInvalidQuarterConfig = errors.New("quarter has no months configured")

	// ErrUnknownQuarter means the quarter label is not one of Q1-Q4.
	ErrUnknownQuarter = errors.New("unknown quarter")

	// ErrMonthUnassigned means no quarter in the current configuration
	// contains the requested month.
	ErrMonthUnassigned = errors.New("month is not assigned to any quarter")
)
