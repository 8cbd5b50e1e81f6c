package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
	"github.com/officetrack/officeday-backend-go/internal/pkg/validator"
	"github.com/officetrack/officeday-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() statistics.StatisticsService {
	return NewStatisticsService(memory.NewQuarterConfigStore())
}

func utcDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ===== WORKING DAYS =====

func TestCalculateWorkingDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "full work week Mon-Fri",
			start: utcDay(2024, time.January, 15),
			end:   utcDay(2024, time.January, 19),
			want:  5,
		},
		{
			name:  "full month January 2024",
			start: utcDay(2024, time.January, 1),
			end:   utcDay(2024, time.January, 31),
			want:  23,
		},
		{
			name:  "single weekday",
			start: utcDay(2024, time.January, 15),
			end:   utcDay(2024, time.January, 15),
			want:  1,
		},
		{
			name:  "single weekend day",
			start: utcDay(2024, time.January, 13),
			end:   utcDay(2024, time.January, 13),
			want:  0,
		},
		{
			name:  "start after end",
			start: utcDay(2024, time.January, 19),
			end:   utcDay(2024, time.January, 15),
			want:  0,
		},
		{
			name:  "weekend only",
			start: utcDay(2024, time.January, 13),
			end:   utcDay(2024, time.January, 14),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateWorkingDays(tt.start, tt.end))
		})
	}
}

func TestCalculateWorkingDays_CallerTimezoneIndependent(t *testing.T) {
	t.Parallel()

	// The same UTC calendar range expressed through different host offsets
	// must yield identical counts.
	tokyo := time.FixedZone("UTC+9", 9*3600)
	la := time.FixedZone("UTC-8", -8*3600)

	start := utcDay(2024, time.January, 1)
	end := utcDay(2024, time.January, 31)

	want := CalculateWorkingDays(start, end)
	assert.Equal(t, want, CalculateWorkingDays(start.In(tokyo), end.In(tokyo)))
	assert.Equal(t, want, CalculateWorkingDays(start.In(la), end.In(la)))
}

// ===== MONTH STATS =====

func TestCalculateMonthStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	officeDays := []time.Time{
		utcDay(2024, time.January, 2),
		utcDay(2024, time.January, 8),
		utcDay(2024, time.January, 15),
		utcDay(2024, time.January, 22),
		utcDay(2024, time.January, 29),
	}

	stats, err := svc.CalculateMonthStats(ctx, 2024, 0, officeDays)

	require.NoError(t, err)
	assert.Equal(t, statistics.PeriodStats{
		WorkingDays: 23,
		OfficeDays:  5,
		Percentage:  22,
		Period:      "January 2024",
	}, stats)
}

func TestCalculateMonthStats_IgnoresOtherMonths(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	officeDays := []time.Time{
		utcDay(2024, time.January, 2),
		utcDay(2024, time.February, 2),
		utcDay(2023, time.January, 2),
	}

	stats, err := svc.CalculateMonthStats(ctx, 2024, 0, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.OfficeDays)
}

func TestCalculateMonthStats_MatchesOnUTCComponents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	// Jan 31 23:00 in UTC-5 is Feb 1 04:00 UTC: counted in February.
	la := time.FixedZone("UTC-5", -5*3600)
	officeDays := []time.Time{
		time.Date(2024, time.January, 31, 23, 0, 0, 0, la),
	}

	jan, err := svc.CalculateMonthStats(ctx, 2024, 0, officeDays)
	require.NoError(t, err)
	assert.Equal(t, 0, jan.OfficeDays)

	feb, err := svc.CalculateMonthStats(ctx, 2024, 1, officeDays)
	require.NoError(t, err)
	assert.Equal(t, 1, feb.OfficeDays)
}

// ===== QUARTER STATS =====

func TestCalculateQuarterStats_DefaultConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	officeDays := []time.Time{
		utcDay(2024, time.January, 2),
		utcDay(2024, time.February, 5),
		utcDay(2024, time.March, 11),
		utcDay(2024, time.April, 1), // Q2, excluded
	}

	stats, err := svc.CalculateQuarterStats(ctx, 2024, statistics.QuarterQ1, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.OfficeDays)
	assert.Equal(t, "Q1 2024", stats.Period)
	// Jan 1 - Mar 31 2024 has 65 working days.
	assert.Equal(t, 65, stats.WorkingDays)
	assert.Equal(t, 5, stats.Percentage)
}

func TestCalculateQuarterStats_EmptyQuarterFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewQuarterConfigStore()
	svc := NewStatisticsService(store)

	config := statistics.DefaultQuarterConfig()
	config.Q4 = []int{}
	require.NoError(t, store.Set(ctx, config))

	_, err := svc.CalculateQuarterStats(ctx, 2024, statistics.QuarterQ4, []time.Time{})

	require.Error(t, err)
	assert.ErrorIs(t, err, statistics.ErrInvalidQuarterConfig)
}

func TestCalculateQuarterStats_UnknownQuarter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CalculateQuarterStats(ctx, 2024, statistics.Quarter("Q5"), nil)

	assert.ErrorIs(t, err, statistics.ErrUnknownQuarter)
}

func TestCalculateQuarterStats_CustomConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := memory.NewQuarterConfigStore()
	svc := NewStatisticsService(store)

	// Fiscal year shifted by one month: Q1 = Feb, Mar, Apr.
	require.NoError(t, svc.SetQuarterConfig(ctx, statistics.QuarterConfig{
		Q1: []int{1, 2, 3},
		Q2: []int{4, 5, 6},
		Q3: []int{7, 8, 9},
		Q4: []int{10, 11},
	}))

	officeDays := []time.Time{
		utcDay(2024, time.January, 15), // outside shifted Q1
		utcDay(2024, time.February, 1),
		utcDay(2024, time.April, 30),
	}

	stats, err := svc.CalculateQuarterStats(ctx, 2024, statistics.QuarterQ1, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.OfficeDays)
	// Feb 1 - Apr 30 2024.
	assert.Equal(t, CalculateWorkingDays(utcDay(2024, time.February, 1), utcDay(2024, time.April, 30)), stats.WorkingDays)
}

// ===== YEAR STATS =====

func TestCalculateYearStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	officeDays := []time.Time{
		utcDay(2024, time.January, 2),
		utcDay(2024, time.June, 14),
		utcDay(2024, time.December, 31),
		utcDay(2023, time.December, 29), // excluded
	}

	stats, err := svc.CalculateYearStats(ctx, 2024, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.OfficeDays)
	assert.Equal(t, "2024", stats.Period)
	// 2024 is a leap year starting on Monday: 262 working days.
	assert.Equal(t, 262, stats.WorkingDays)
	assert.Equal(t, 1, stats.Percentage)
}

// ===== CUSTOM PERIOD =====

func TestCalculateCustomPeriodStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	start := utcDay(2024, time.January, 15)
	end := utcDay(2024, time.January, 19)
	officeDays := []time.Time{
		utcDay(2024, time.January, 15),
		utcDay(2024, time.January, 19),
		utcDay(2024, time.January, 22), // outside range
	}

	stats, err := svc.CalculateCustomPeriodStats(ctx, start, end, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.OfficeDays)
	assert.Equal(t, 5, stats.WorkingDays)
	assert.Equal(t, 40, stats.Percentage)
	assert.Equal(t, "Jan 15 - Jan 19, 2024", stats.Period)
}

// ===== PERCENTAGE INVARIANTS =====

func TestPercentage_ZeroWorkingDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	// A weekend-only range has no working days.
	start := utcDay(2024, time.January, 13)
	end := utcDay(2024, time.January, 14)
	officeDays := []time.Time{utcDay(2024, time.January, 13)}

	stats, err := svc.CalculateCustomPeriodStats(ctx, start, end, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 0, stats.WorkingDays)
	assert.Equal(t, 1, stats.OfficeDays)
	assert.Equal(t, 0, stats.Percentage)
}

func TestPercentage_CanExceedHundred(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	// One working day in range, office days logged on the weekend too.
	start := utcDay(2024, time.January, 13) // Saturday
	end := utcDay(2024, time.January, 15)   // Monday
	officeDays := []time.Time{
		utcDay(2024, time.January, 13),
		utcDay(2024, time.January, 14),
		utcDay(2024, time.January, 15),
	}

	stats, err := svc.CalculateCustomPeriodStats(ctx, start, end, officeDays)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.WorkingDays)
	assert.Equal(t, 300, stats.Percentage)
}

// ===== AVAILABLE SELECTORS =====

func TestGetAvailableYears(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	assert.Empty(t, svc.GetAvailableYears([]time.Time{}))

	years := svc.GetAvailableYears([]time.Time{
		utcDay(2023, time.May, 1),
		utcDay(2025, time.January, 1),
		utcDay(2023, time.June, 2),
		utcDay(2024, time.March, 3),
	})
	assert.Equal(t, []int{2025, 2024, 2023}, years)
}

func TestGetAvailableMonths(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	daysOnlyIn2024 := []time.Time{
		utcDay(2024, time.March, 1),
		utcDay(2024, time.January, 10),
		utcDay(2024, time.March, 15),
	}

	assert.Empty(t, svc.GetAvailableMonths(2023, daysOnlyIn2024))
	assert.Equal(t, []int{0, 2}, svc.GetAvailableMonths(2024, daysOnlyIn2024))
}

// ===== QUARTER CONFIG =====

func TestQuarterConfig_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	config := statistics.QuarterConfig{
		Q1: []int{1, 2, 3},
		Q2: []int{4, 5, 6},
		Q3: []int{7, 8, 9},
		Q4: []int{10, 11},
	}

	require.NoError(t, svc.SetQuarterConfig(ctx, config))

	got, err := svc.GetQuarterConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, config, got)
}

func TestQuarterConfig_Reset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	custom := statistics.DefaultQuarterConfig()
	custom.Q4 = []int{11}
	custom.Q3 = []int{6, 7, 8, 9, 10}
	require.NoError(t, svc.SetQuarterConfig(ctx, custom))

	restored, err := svc.ResetQuarterConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, statistics.DefaultQuarterConfig(), restored)

	got, err := svc.GetQuarterConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, statistics.DefaultQuarterConfig(), got)
}

func TestSetQuarterConfig_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name   string
		config statistics.QuarterConfig
	}{
		{
			name: "month out of range",
			config: statistics.QuarterConfig{
				Q1: []int{0, 1, 12},
				Q2: []int{3, 4, 5},
				Q3: []int{6, 7, 8},
				Q4: []int{9, 10, 11},
			},
		},
		{
			name: "month in two quarters",
			config: statistics.QuarterConfig{
				Q1: []int{0, 1, 2},
				Q2: []int{2, 3, 4},
				Q3: []int{6, 7, 8},
				Q4: []int{9, 10, 11},
			},
		},
		{
			name: "non-contiguous month set",
			config: statistics.QuarterConfig{
				Q1: []int{0, 2},
				Q2: []int{3, 4, 5},
				Q3: []int{6, 7, 8},
				Q4: []int{9, 10, 11},
			},
		},
		{
			name: "wrap-around quarter",
			config: statistics.QuarterConfig{
				Q1: []int{11, 0, 1},
				Q2: []int{2, 3, 4},
				Q3: []int{5, 6, 7},
				Q4: []int{8, 9, 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			err := svc.SetQuarterConfig(ctx, tt.config)

			require.Error(t, err)
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestQuarterForMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	q, err := svc.QuarterForMonth(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, statistics.QuarterQ3, q)

	store := memory.NewQuarterConfigStore()
	svc = NewStatisticsService(store)
	config := statistics.DefaultQuarterConfig()
	config.Q4 = []int{9, 10}
	require.NoError(t, store.Set(ctx, config))

	_, err = svc.QuarterForMonth(ctx, 11)
	assert.ErrorIs(t, err, statistics.ErrMonthUnassigned)
}

// ===== PERIOD HELPERS =====

func TestMonthName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "August", MonthName(7))
	assert.Equal(t, "December", MonthName(11))
}

func TestMonthRange_LeapFebruary(t *testing.T) {
	t.Parallel()

	start, end := monthRange(2024, 1)
	assert.Equal(t, utcDay(2024, time.February, 1), start)
	assert.Equal(t, utcDay(2024, time.February, 29), end)
}
