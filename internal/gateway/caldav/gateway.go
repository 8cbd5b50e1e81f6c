package caldav

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	ics "github.com/emersion/go-ical"
	"github.com/emersion/go-webdav/caldav"
	"github.com/google/uuid"
	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
)

// Gateway implements calendar.CalendarGateway against a CalDAV server.
// CalDAV has no notion of a "primary" calendar, so the configured calendar
// name is reported as primary; the service falls back to the first calendar
// when no name matches.
type Gateway struct {
	client      *caldav.Client
	primaryName string
}

func NewGateway(endpoint, username, password, primaryName string) (*Gateway, error) {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &basicAuthTransport{
			username: username,
			password: password,
			base:     http.DefaultTransport,
		},
	}

	client, err := caldav.NewClient(httpClient, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create caldav client: %w", err)
	}

	return &Gateway{client: client, primaryName: primaryName}, nil
}

// ListCalendars implements calendar.CalendarGateway. The principal and home
// set are resolved on every call; nothing is cached across calls.
func (g *Gateway) ListCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	principal, err := g.client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return nil, fmt.Errorf("find principal: %w", err)
	}

	homeSet, err := g.client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("find calendar home: %w", err)
	}

	cals, err := g.client.FindCalendars(ctx, homeSet)
	if err != nil {
		return nil, fmt.Errorf("find calendars: %w", err)
	}

	calendars := make([]calendar.Calendar, 0, len(cals))
	for _, cal := range cals {
		calendars = append(calendars, calendar.Calendar{
			ID:        cal.Path,
			Name:      cal.Name,
			IsPrimary: g.primaryName != "" && strings.EqualFold(cal.Name, g.primaryName),
		})
	}
	return calendars, nil
}

// CreateEvent implements calendar.CalendarGateway.
func (g *Gateway) CreateEvent(ctx context.Context, calendarID string, details calendar.EventDetails) (string, error) {
	uid := uuid.NewString()

	cal := ics.NewCalendar()
	cal.Props.SetText(ics.PropVersion, "2.0")
	cal.Props.SetText(ics.PropProductID, "-//officetrack//officeday-backend-go//EN")

	event := ics.NewEvent()
	event.Props.SetText(ics.PropUID, uid)
	event.Props.SetDateTime(ics.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetText(ics.PropSummary, details.Title)
	if details.Location != "" {
		event.Props.SetText(ics.PropLocation, details.Location)
	}
	if details.Notes != "" {
		event.Props.SetText(ics.PropDescription, details.Notes)
	}
	if details.Availability == "busy" {
		event.Props.SetText(ics.PropTransparency, "OPAQUE")
	}

	if details.AllDay {
		event.Props.SetDate(ics.PropDateTimeStart, details.StartDate.UTC())
		event.Props.SetDate(ics.PropDateTimeEnd, details.EndDate.UTC())
	} else {
		event.Props.SetDateTime(ics.PropDateTimeStart, details.StartDate)
		event.Props.SetDateTime(ics.PropDateTimeEnd, details.EndDate)
	}

	cal.Children = append(cal.Children, event.Component)

	path := strings.TrimSuffix(calendarID, "/") + "/" + uid + ".ics"
	obj, err := g.client.PutCalendarObject(ctx, path, cal)
	if err != nil {
		return "", fmt.Errorf("put calendar object: %w", err)
	}
	return obj.Path, nil
}

// QueryEvents implements calendar.CalendarGateway.
func (g *Gateway) QueryEvents(ctx context.Context, calendarIDs []string, rangeStart, rangeEnd time.Time) ([]calendar.Event, error) {
	query := &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name: "VCALENDAR",
			Comps: []caldav.CalendarCompRequest{{
				Name: "VEVENT",
				Props: []string{
					"SUMMARY",
					"DTSTART",
					"DTEND",
					"UID",
					"DESCRIPTION",
					"LOCATION",
				},
			}},
		},
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{{
				Name:  "VEVENT",
				Start: rangeStart,
				End:   rangeEnd,
			}},
		},
	}

	var events []calendar.Event
	for _, calendarID := range calendarIDs {
		objects, err := g.client.QueryCalendar(ctx, calendarID, query)
		if err != nil {
			return nil, fmt.Errorf("query calendar %s: %w", calendarID, err)
		}

		for _, obj := range objects {
			if obj.Data == nil {
				continue
			}
			for _, comp := range obj.Data.Children {
				if comp.Name != ics.CompEvent {
					continue
				}
				ev, err := parseEventComponent(comp, obj.Path)
				if err != nil {
					continue
				}
				events = append(events, ev)
			}
		}
	}
	return events, nil
}

// DeleteEvent implements calendar.CalendarGateway. Event identifiers are the
// object paths returned by CreateEvent and QueryEvents.
func (g *Gateway) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.client.RemoveAll(ctx, eventID); err != nil {
		return fmt.Errorf("remove calendar object: %w", err)
	}
	return nil
}

// GetPermissionStatus implements calendar.CalendarGateway. A successful
// principal lookup means the account is authorized.
func (g *Gateway) GetPermissionStatus(ctx context.Context) (calendar.PermissionStatus, error) {
	if _, err := g.client.FindCurrentUserPrincipal(ctx); err != nil {
		return calendar.PermissionUndetermined, fmt.Errorf("find principal: %w", err)
	}
	return calendar.PermissionGranted, nil
}

// parseEventComponent converts an ICS VEVENT into a raw calendar event.
func parseEventComponent(comp *ics.Component, objPath string) (calendar.Event, error) {
	ev := calendar.Event{ID: objPath}

	if prop := comp.Props.Get(ics.PropSummary); prop != nil {
		ev.Title = prop.Value
	}
	if prop := comp.Props.Get(ics.PropLocation); prop != nil {
		ev.Location = prop.Value
	}
	if prop := comp.Props.Get(ics.PropDescription); prop != nil {
		ev.Notes = prop.Value
	}

	start := comp.Props.Get(ics.PropDateTimeStart)
	if start == nil {
		return ev, fmt.Errorf("event %s has no start date", objPath)
	}

	if start.ValueType() == ics.ValueDate {
		t, err := time.ParseInLocation("20060102", start.Value, time.UTC)
		if err != nil {
			return ev, fmt.Errorf("parse start date: %w", err)
		}
		ev.StartDate = t
		ev.AllDay = true
		// Date-only values are zone-less; this service writes its all-day
		// events as UTC calendar days, so they read back as UTC-declared.
		ev.TimeZone = "UTC"
	} else {
		t, err := start.DateTime(time.UTC)
		if err != nil {
			return ev, fmt.Errorf("parse start time: %w", err)
		}
		ev.StartDate = t
		ev.TimeZone = declaredZone(start)
	}

	if end := comp.Props.Get(ics.PropDateTimeEnd); end != nil {
		if end.ValueType() == ics.ValueDate {
			if t, err := time.ParseInLocation("20060102", end.Value, time.UTC); err == nil {
				ev.EndDate = t
			}
		} else if t, err := end.DateTime(time.UTC); err == nil {
			ev.EndDate = t
		}
	}
	if ev.EndDate.IsZero() {
		if ev.AllDay {
			ev.EndDate = ev.StartDate.AddDate(0, 0, 1)
		} else {
			ev.EndDate = ev.StartDate.Add(time.Hour)
		}
	}

	return ev, nil
}

// declaredZone extracts the time zone a datetime property declares, if any.
func declaredZone(prop *ics.Prop) string {
	if strings.HasSuffix(prop.Value, "Z") {
		return "UTC"
	}
	return prop.Params.Get(ics.ParamTimezoneID)
}

// basicAuthTransport adds basic auth to HTTP requests.
type basicAuthTransport struct {
	username string
	password string
	base     http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(req)
}

var _ calendar.CalendarGateway = (*Gateway)(nil)
