package calendar

import (
	"context"
	"time"
)

// CalendarGateway is the boundary to the calendar store. The core does not
// implement calendar storage; it consumes these five operations.
type CalendarGateway interface {
	// ListCalendars enumerates the calendars visible to the configured account.
	ListCalendars(ctx context.Context) ([]Calendar, error)

	// CreateEvent creates an event on the given calendar and returns the
	// store-assigned event identifier.
	CreateEvent(ctx context.Context, calendarID string, details EventDetails) (string, error)

	// QueryEvents retrieves events overlapping [rangeStart, rangeEnd) on the
	// given calendars.
	QueryEvents(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]Event, error)

	// DeleteEvent removes an event by its identifier.
	DeleteEvent(ctx context.Context, eventID string) error

	// GetPermissionStatus reports whether the account may access the store.
	GetPermissionStatus(ctx context.Context) (PermissionStatus, error)
}
