package calendar

import (
	"time"

	"github.com/officetrack/officeday-backend-go/internal/pkg/validator"
)

// ========================================
// OFFICE DAY DTOs
// ========================================

type LogOfficeDayRequest struct {
	// Date in "2006-01-02" form. Empty means today.
	Date string `json:"date"`
}

func (r *LogOfficeDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Day returns the requested calendar date, or today in loc when unset.
func (r *LogOfficeDayRequest) Day(now time.Time, loc *time.Location) time.Time {
	if validator.IsEmpty(r.Date) {
		return now.In(loc)
	}
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type OfficeDayResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ListOfficeDaysResponse struct {
	OfficeDays []OfficeDayResponse `json:"office_days"`
	Total      int                 `json:"total"`
}

type TodayResponse struct {
	LoggedToday bool `json:"logged_today"`
}

type PermissionsResponse struct {
	Granted bool `json:"granted"`
}

// ToOfficeDayResponse maps a normalized event into its API representation.
func ToOfficeDayResponse(ev OfficeDayEvent) OfficeDayResponse {
	return OfficeDayResponse{
		ID:    ev.ID,
		Title: ev.Title,
		Date:  ev.StartDate.Format("2006-01-02"),
	}
}
