package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
)

// defaultMonthsBack is how far LoadRecentOfficeDays looks when the caller
// does not say otherwise.
const defaultMonthsBack = 6

type CalendarServiceImpl struct {
	calendar.CalendarGateway

	// Location is the display timezone for day boundaries and normalization.
	Location *time.Location
	// Now is swappable in tests.
	Now func() time.Time
}

func NewCalendarService(gateway calendar.CalendarGateway) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		CalendarGateway: gateway,
		Location:        time.Local,
		Now:             time.Now,
	}
}

// Initialize implements calendar.CalendarService.
func (s *CalendarServiceImpl) Initialize(ctx context.Context) (calendar.Session, error) {
	calendars, err := s.CalendarGateway.ListCalendars(ctx)
	if err != nil {
		return calendar.Session{}, fmt.Errorf("%w: %v", calendar.ErrCalendarInitialization, err)
	}

	for _, cal := range calendars {
		if cal.IsPrimary {
			return calendar.Session{CalendarID: cal.ID}, nil
		}
	}
	if len(calendars) > 0 {
		// Fallback to first available calendar if no primary calendar.
		return calendar.Session{CalendarID: calendars[0].ID}, nil
	}

	// Zero calendars is a valid state, not an initialization failure.
	return calendar.Session{}, nil
}

// ensureCalendar initializes the session in place when it holds no calendar.
func (s *CalendarServiceImpl) ensureCalendar(ctx context.Context, session *calendar.Session) error {
	if session.HasCalendar() {
		return nil
	}
	initialized, err := s.Initialize(ctx)
	if err != nil {
		return err
	}
	*session = initialized
	if !session.HasCalendar() {
		return calendar.ErrNoCalendarAvailable
	}
	return nil
}

// LogOfficeDay implements calendar.CalendarService. The event spans exactly
// one UTC calendar day, midnight to midnight, regardless of the date's own
// location.
func (s *CalendarServiceImpl) LogOfficeDay(ctx context.Context, session *calendar.Session, date time.Time) error {
	if err := s.ensureCalendar(ctx, session); err != nil {
		return err
	}

	y, m, d := date.Date()
	startDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 0, 1)

	details := calendar.EventDetails{
		Title:        calendar.OfficeDayTitle,
		StartDate:    startDate,
		EndDate:      endDate,
		AllDay:       true,
		TimeZone:     "UTC",
		Location:     calendar.OfficeDayLocation,
		Notes:        calendar.OfficeDayNotes,
		Availability: "busy",
	}

	if _, err := s.CalendarGateway.CreateEvent(ctx, session.CalendarID, details); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrEventCreationFailed, err)
	}
	return nil
}

// HasOfficeDayToday implements calendar.CalendarService.
func (s *CalendarServiceImpl) HasOfficeDayToday(ctx context.Context, session *calendar.Session) bool {
	if err := s.ensureCalendar(ctx, session); err != nil {
		return false
	}

	y, m, d := s.Now().In(s.Location).Date()
	startDate := time.Date(y, m, d, 0, 0, 0, 0, s.Location)
	endDate := startDate.AddDate(0, 0, 1)

	events, err := s.CalendarGateway.QueryEvents(ctx, []string{session.CalendarID}, startDate, endDate)
	if err != nil {
		return false
	}

	for _, ev := range events {
		if ev.Title == calendar.OfficeDayTitle && ev.AllDay {
			return true
		}
	}
	return false
}

// LoadOfficeDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) LoadOfficeDays(ctx context.Context, session *calendar.Session, start, end time.Time) ([]calendar.OfficeDayEvent, error) {
	if err := s.ensureCalendar(ctx, session); err != nil {
		return nil, err
	}

	events, err := s.CalendarGateway.QueryEvents(ctx, []string{session.CalendarID}, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query office days: %w", err)
	}

	return NormalizeOfficeDays(events, s.Location), nil
}

// LoadRecentOfficeDays implements calendar.CalendarService.
func (s *CalendarServiceImpl) LoadRecentOfficeDays(ctx context.Context, session *calendar.Session, monthsBack int) ([]calendar.OfficeDayEvent, error) {
	if monthsBack <= 0 {
		monthsBack = defaultMonthsBack
	}
	end := s.Now().In(s.Location)
	start := end.AddDate(0, -monthsBack, 0)
	return s.LoadOfficeDays(ctx, session, start, end)
}

// DeleteOfficeDay implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteOfficeDay(ctx context.Context, session *calendar.Session, eventID string) error {
	if err := s.CalendarGateway.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrEventDeletionFailed, err)
	}
	return nil
}

// HasPermissions implements calendar.CalendarService.
func (s *CalendarServiceImpl) HasPermissions(ctx context.Context) bool {
	status, err := s.CalendarGateway.GetPermissionStatus(ctx)
	if err != nil {
		return false
	}
	return status == calendar.PermissionGranted
}
