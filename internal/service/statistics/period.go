package statistics

import (
	"fmt"
	"strconv"
	"time"
)

// Period boundaries are plain calendar dates, represented at UTC midnight so
// that two callers in different host timezones resolve identical ranges.

// monthRange returns the first and last calendar day of month (0-11) in year.
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the following month normalizes to the last day of this one.
	end := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// quarterRange spans from day 1 of the earliest month in the set to the last
// day of the latest. The set is validated as contiguous on write, so min..max
// cannot silently cover unconfigured months.
func quarterRange(year int, months []int) (time.Time, time.Time) {
	lo, hi := months[0], months[0]
	for _, m := range months[1:] {
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	start := time.Date(year, time.Month(lo+1), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(hi+2), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// yearRange returns January 1 through December 31 of year.
func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// MonthName returns the long English name of month (0-11).
func MonthName(month int) string {
	return time.Month(month + 1).String()
}

func monthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

func yearLabel(year int) string {
	return strconv.Itoa(year)
}

func rangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}
