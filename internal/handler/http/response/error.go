package response

import (
	"errors"
	"net/http"

	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
	"github.com/officetrack/officeday-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Calendar domain errors
	case errors.Is(err, calendar.ErrNoCalendarAvailable):
		NotFound(w, "No calendar available")
	case errors.Is(err, calendar.ErrCalendarInitialization):
		BadGateway(w, "Failed to initialize calendar service")
	case errors.Is(err, calendar.ErrEventCreationFailed):
		BadGateway(w, "Failed to log office day to calendar")
	case errors.Is(err, calendar.ErrEventDeletionFailed):
		BadGateway(w, "Failed to delete office day from calendar")

	// Statistics domain errors
	case errors.Is(err, statistics.ErrInvalidQuarterConfig):
		BadRequest(w, "Requested quarter has no months configured", nil)
	case errors.Is(err, statistics.ErrUnknownQuarter):
		BadRequest(w, "Quarter must be one of Q1-Q4", nil)
	case errors.Is(err, statistics.ErrMonthUnassigned):
		NotFound(w, "Month is not assigned to any quarter")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
