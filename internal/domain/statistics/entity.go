package statistics

// PeriodStats is the aggregate attendance result for one period.
// OfficeDays may exceed WorkingDays when office days were logged on weekends.
type PeriodStats struct {
	WorkingDays int    `json:"working_days"`
	OfficeDays  int    `json:"office_days"`
	Percentage  int    `json:"percentage"`
	Period      string `json:"period"`
}

// Quarter is one of the four quarter labels.
type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Quarters lists the quarter labels in calendar order.
var Quarters = []Quarter{QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4}

// Valid reports whether q is one of the four known labels.
func (q Quarter) Valid() bool {
	switch q {
	case QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4:
		return true
	}
	return false
}

// QuarterConfig maps each quarter label to a set of month indices (0-11).
type QuarterConfig struct {
	Q1 []int `json:"Q1"`
	Q2 []int `json:"Q2"`
	Q3 []int `json:"Q3"`
	Q4 []int `json:"Q4"`
}

// DefaultQuarterConfig returns the standard calendar-year mapping.
func DefaultQuarterConfig() QuarterConfig {
	return QuarterConfig{
		Q1: []int{0, 1, 2},   // January, February, March
		Q2: []int{3, 4, 5},   // April, May, June
		Q3: []int{6, 7, 8},   // July, August, September
		Q4: []int{9, 10, 11}, // October, November, December
	}
}

// Months returns the month set configured for the given quarter.
func (c QuarterConfig) Months(q Quarter) []int {
	switch q {
	case QuarterQ1:
		return c.Q1
	case QuarterQ2:
		return c.Q2
	case QuarterQ3:
		return c.Q3
	case QuarterQ4:
		return c.Q4
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate stored state through
// shared slices.
func (c QuarterConfig) Clone() QuarterConfig {
	clone := func(months []int) []int {
		if months == nil {
			return nil
		}
		out := make([]int, len(months))
		copy(out, months)
		return out
	}
	return QuarterConfig{
		Q1: clone(c.Q1),
		Q2: clone(c.Q2),
		Q3: clone(c.Q3),
		Q4: clone(c.Q4),
	}
}
