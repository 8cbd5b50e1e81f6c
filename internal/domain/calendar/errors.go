package calendar

import "errors"

// Calendar domain errors
var (
	// ErrCalendarInitialization means the gateway listing call itself failed.
	// Zero calendars returned is a valid "no calendar" state, not this error.
	ErrCalendarInitialization = errors.New("failed to initialize calendar service")

	// ErrNoCalendarAvailable means an operation requiring an active calendar
	// found none after an initialization attempt.
	ErrNoCalendarAvailable = errors.New("no calendar available")

	ErrEventCreationFailed = errors.New("failed to log office day to calendar")
	ErrEventDeletionFailed = errors.New("failed to delete office day from calendar")
)
