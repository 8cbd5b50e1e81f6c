package statistics

import (
	"fmt"
	"sort"

	"github.com/officetrack/officeday-backend-go/internal/pkg/validator"
)

// ========================================
// STATISTICS DTOs
// ========================================

type UpdateQuarterConfigRequest struct {
	Q1 []int `json:"Q1"`
	Q2 []int `json:"Q2"`
	Q3 []int `json:"Q3"`
	Q4 []int `json:"Q4"`
}

// Validate enforces the supported quarter-configuration contract: month
// indices in 0-11, no month assigned to more than one quarter, and each
// quarter's month set contiguous and non-wrapping. An empty set is accepted;
// requesting stats for that quarter fails at query time instead.
func (r *UpdateQuarterConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	seen := make(map[int]Quarter)
	quarters := []struct {
		label  Quarter
		months []int
	}{
		{QuarterQ1, r.Q1},
		{QuarterQ2, r.Q2},
		{QuarterQ3, r.Q3},
		{QuarterQ4, r.Q4},
	}

	for _, q := range quarters {
		field := string(q.label)

		for _, m := range q.months {
			if m < 0 || m > 11 {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: fmt.Sprintf("month index %d is out of range 0-11", m),
				})
				continue
			}
			if owner, ok := seen[m]; ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: fmt.Sprintf("month index %d is already assigned to %s", m, owner),
				})
				continue
			}
			seen[m] = q.label
		}

		if !isContiguous(q.months) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "months must form a contiguous, non-wrapping range",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Config converts the request into the domain configuration.
func (r *UpdateQuarterConfigRequest) Config() QuarterConfig {
	return QuarterConfig{Q1: r.Q1, Q2: r.Q2, Q3: r.Q3, Q4: r.Q4}.Clone()
}

// isContiguous reports whether months form a run of consecutive indices.
// Empty and single-month sets are contiguous.
func isContiguous(months []int) bool {
	if len(months) < 2 {
		return true
	}
	sorted := make([]int, len(months))
	copy(sorted, months)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

type AvailableYearsResponse struct {
	Years []int `json:"years"`
}

type AvailableMonthsResponse struct {
	Year   int   `json:"year"`
	Months []int `json:"months"`
}
