package calendar

import (
	"context"
	"time"
)

// CalendarService defines business logic for office-day calendar operations.
// The session returned by Initialize is threaded through subsequent calls;
// there is no implicit module-level active-calendar state.
type CalendarService interface {
	// Initialize lists calendars and selects the primary one, else the first
	// available, else none. It never caches across calls.
	Initialize(ctx context.Context) (Session, error)

	// LogOfficeDay creates an all-day "Office Day" event for the given date,
	// spanning exactly one UTC calendar day. Initializes the session if it
	// holds no calendar yet.
	LogOfficeDay(ctx context.Context, session *Session, date time.Time) error

	// HasOfficeDayToday reports whether an office day is already logged for
	// today. Advisory: resolves to false on any internal failure.
	HasOfficeDayToday(ctx context.Context, session *Session) bool

	// LoadOfficeDays retrieves normalized office days in [start, end),
	// most recent first.
	LoadOfficeDays(ctx context.Context, session *Session, start, end time.Time) ([]OfficeDayEvent, error)

	// LoadRecentOfficeDays retrieves normalized office days logged within the
	// past monthsBack months.
	LoadRecentOfficeDays(ctx context.Context, session *Session, monthsBack int) ([]OfficeDayEvent, error)

	// DeleteOfficeDay removes a logged office day by event identifier. The
	// caller is responsible for reloading cached lists afterward.
	DeleteOfficeDay(ctx context.Context, session *Session, eventID string) error

	// HasPermissions reports whether calendar access is granted. Advisory:
	// resolves to false on any internal failure.
	HasPermissions(ctx context.Context) bool
}
