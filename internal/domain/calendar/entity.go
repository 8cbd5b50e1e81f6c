package calendar

import "time"

// Fixed metadata for office-day events created by this service.
const (
	OfficeDayTitle    = "Office Day"
	OfficeDayLocation = "Office"
	OfficeDayNotes    = "Logged via Office Day Tracker"
)

// Calendar is one calendar exposed by the gateway.
type Calendar struct {
	ID        string
	Name      string
	IsPrimary bool
}

// Event is a raw event as returned by the gateway, before normalization.
// TimeZone is empty when the calendar store declared none.
type Event struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	AllDay    bool
	TimeZone  string
	Location  string
	Notes     string
}

// OfficeDayEvent is a normalized office-day entry. StartDate holds the local
// calendar day the office day belongs to, with the UTC-vs-local ambiguity of
// the raw event already resolved.
type OfficeDayEvent struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
}

// EventDetails describes an event to be created through the gateway.
type EventDetails struct {
	Title        string
	StartDate    time.Time
	EndDate      time.Time
	AllDay       bool
	TimeZone     string
	Location     string
	Notes        string
	Availability string
}

// PermissionStatus is the platform permission state for calendar access.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// Session carries the active calendar across service calls. A zero Session
// means no calendar has been selected yet.
type Session struct {
	CalendarID string
}

// HasCalendar reports whether the session holds an active calendar.
func (s Session) HasCalendar() bool {
	return s.CalendarID != ""
}
