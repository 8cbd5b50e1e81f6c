package statistics

import (
	"context"
	"time"
)

// StatisticsService defines attendance-statistics business logic. Office-day
// dates are passed explicitly on every call; the service holds no cache of
// them.
type StatisticsService interface {
	// CalculateMonthStats aggregates office days for one month (0-11).
	CalculateMonthStats(ctx context.Context, year, month int, officeDays []time.Time) (PeriodStats, error)

	// CalculateQuarterStats aggregates office days for one quarter, resolved
	// against the current quarter configuration.
	CalculateQuarterStats(ctx context.Context, year int, quarter Quarter, officeDays []time.Time) (PeriodStats, error)

	// CalculateYearStats aggregates office days for a full year.
	CalculateYearStats(ctx context.Context, year int, officeDays []time.Time) (PeriodStats, error)

	// CalculateCustomPeriodStats aggregates office days inside an arbitrary
	// inclusive date range.
	CalculateCustomPeriodStats(ctx context.Context, start, end time.Time, officeDays []time.Time) (PeriodStats, error)

	// GetAvailableYears lists the years office days exist for, descending.
	GetAvailableYears(officeDays []time.Time) []int

	// GetAvailableMonths lists the months (0-11) office days exist for in the
	// given year, ascending.
	GetAvailableMonths(year int, officeDays []time.Time) []int

	// QuarterForMonth returns the quarter the given month belongs to under
	// the current configuration.
	QuarterForMonth(ctx context.Context, month int) (Quarter, error)

	// GetQuarterConfig returns the current quarter configuration.
	GetQuarterConfig(ctx context.Context) (QuarterConfig, error)

	// SetQuarterConfig validates and stores a new quarter configuration.
	SetQuarterConfig(ctx context.Context, config QuarterConfig) error

	// ResetQuarterConfig restores the standard calendar mapping.
	ResetQuarterConfig(ctx context.Context) (QuarterConfig, error)
}
