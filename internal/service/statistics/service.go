package statistics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
)

type StatisticsServiceImpl struct {
	store statistics.QuarterConfigStore
}

func NewStatisticsService(store statistics.QuarterConfigStore) statistics.StatisticsService {
	return &StatisticsServiceImpl{store: store}
}

// CalculateWorkingDays counts Monday-Friday calendar days between start and
// end, inclusive both ends. Both bounds are truncated to UTC midnight before
// iteration, so the count never depends on the caller's local timezone.
// start after end yields zero.
func CalculateWorkingDays(start, end time.Time) int {
	cur := utcMidnight(start)
	last := utcMidnight(end)

	workingDays := 0
	for !cur.After(last) {
		wd := cur.Weekday()
		if wd >= time.Monday && wd <= time.Friday {
			workingDays++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return workingDays
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateMonthStats implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) CalculateMonthStats(ctx context.Context, year, month int, officeDays []time.Time) (statistics.PeriodStats, error) {
	start, end := monthRange(year, month)

	// Membership is tested on each date's UTC calendar components, not on
	// range containment.
	officeDaysInMonth := countOfficeDays(officeDays, func(d time.Time) bool {
		du := d.UTC()
		return du.Year() == year && int(du.Month())-1 == month
	})

	return buildStats(start, end, officeDaysInMonth, monthLabel(year, month)), nil
}

// CalculateQuarterStats implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) CalculateQuarterStats(ctx context.Context, year int, quarter statistics.Quarter, officeDays []time.Time) (statistics.PeriodStats, error) {
	if !quarter.Valid() {
		return statistics.PeriodStats{}, fmt.Errorf("%w: %s", statistics.ErrUnknownQuarter, quarter)
	}

	config, err := s.store.Get(ctx)
	if err != nil {
		return statistics.PeriodStats{}, fmt.Errorf("failed to load quarter configuration: %w", err)
	}

	months := config.Months(quarter)
	if len(months) == 0 {
		return statistics.PeriodStats{}, fmt.Errorf("%w: %s", statistics.ErrInvalidQuarterConfig, quarter)
	}

	start, end := quarterRange(year, months)

	monthSet := make(map[int]struct{}, len(months))
	for _, m := range months {
		monthSet[m] = struct{}{}
	}

	officeDaysInQuarter := countOfficeDays(officeDays, func(d time.Time) bool {
		du := d.UTC()
		if du.Year() != year {
			return false
		}
		_, ok := monthSet[int(du.Month())-1]
		return ok
	})

	label := fmt.Sprintf("%s %d", quarter, year)
	return buildStats(start, end, officeDaysInQuarter, label), nil
}

// CalculateYearStats implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) CalculateYearStats(ctx context.Context, year int, officeDays []time.Time) (statistics.PeriodStats, error) {
	start, end := yearRange(year)

	officeDaysInYear := countOfficeDays(officeDays, func(d time.Time) bool {
		return d.UTC().Year() == year
	})

	return buildStats(start, end, officeDaysInYear, yearLabel(year)), nil
}

// CalculateCustomPeriodStats implements statistics.StatisticsService. Unlike
// the fixed periods, membership here is plain range containment.
func (s *StatisticsServiceImpl) CalculateCustomPeriodStats(ctx context.Context, start, end time.Time, officeDays []time.Time) (statistics.PeriodStats, error) {
	officeDaysInRange := countOfficeDays(officeDays, func(d time.Time) bool {
		return !d.Before(start) && !d.After(end)
	})

	return buildStats(start, end, officeDaysInRange, rangeLabel(start, end)), nil
}

// GetAvailableYears implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetAvailableYears(officeDays []time.Time) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, d := range officeDays {
		y := d.UTC().Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// GetAvailableMonths implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetAvailableMonths(year int, officeDays []time.Time) []int {
	seen := make(map[int]struct{})
	months := make([]int, 0)
	for _, d := range officeDays {
		du := d.UTC()
		if du.Year() != year {
			continue
		}
		m := int(du.Month()) - 1
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

// QuarterForMonth implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) QuarterForMonth(ctx context.Context, month int) (statistics.Quarter, error) {
	config, err := s.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load quarter configuration: %w", err)
	}

	for _, q := range statistics.Quarters {
		for _, m := range config.Months(q) {
			if m == month {
				return q, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %d", statistics.ErrMonthUnassigned, month)
}

// GetQuarterConfig implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetQuarterConfig(ctx context.Context) (statistics.QuarterConfig, error) {
	return s.store.Get(ctx)
}

// SetQuarterConfig implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) SetQuarterConfig(ctx context.Context, config statistics.QuarterConfig) error {
	req := statistics.UpdateQuarterConfigRequest{Q1: config.Q1, Q2: config.Q2, Q3: config.Q3, Q4: config.Q4}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.store.Set(ctx, config)
}

// ResetQuarterConfig implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) ResetQuarterConfig(ctx context.Context) (statistics.QuarterConfig, error) {
	return s.store.Reset(ctx)
}

func countOfficeDays(officeDays []time.Time, match func(time.Time) bool) int {
	count := 0
	for _, d := range officeDays {
		if match(d) {
			count++
		}
	}
	return count
}

func buildStats(start, end time.Time, officeDays int, label string) statistics.PeriodStats {
	workingDays := CalculateWorkingDays(start, end)

	percentage := 0
	if workingDays > 0 {
		percentage = int(math.Round(float64(officeDays) / float64(workingDays) * 100))
	}

	return statistics.PeriodStats{
		WorkingDays: workingDays,
		OfficeDays:  officeDays,
		Percentage:  percentage,
		Period:      label,
	}
}
