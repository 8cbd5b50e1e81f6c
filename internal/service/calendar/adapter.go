package calendar

import (
	"sort"
	"time"

	"github.com/officetrack/officeday-backend-go/internal/domain/calendar"
)

// Raw events come back from calendar stores with three possible time-zone
// declarations, each needing a different correction before the start date can
// be read as a calendar day. The classification and the per-variant
// conversions are pure so they stay testable apart from gateway I/O.

type zoneDeclaration int

const (
	zoneDeclaredUTC zoneDeclaration = iota
	zoneDeclaredOther
	zoneDeclaredNone
)

func classifyZone(timeZone string) zoneDeclaration {
	switch timeZone {
	case "UTC":
		return zoneDeclaredUTC
	case "":
		return zoneDeclaredNone
	default:
		return zoneDeclaredOther
	}
}

// normalizeUTCDeclared reads the UTC date components and rebuilds that same
// calendar day at midnight in loc. Without this, an event stored as
// 2025-08-04T00:00:00Z displays as August 3 in a negative-offset locale.
func normalizeUTCDeclared(start time.Time, loc *time.Location) time.Time {
	y, m, d := start.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// normalizeOtherDeclared shifts the start date backwards by loc's UTC offset,
// compensating for calendar-store normalization of zone-declared events.
func normalizeOtherDeclared(start time.Time, loc *time.Location) time.Time {
	_, offset := start.In(loc).Zone()
	return start.Add(-time.Duration(offset) * time.Second).In(loc)
}

// normalizeUndeclared leaves the start date as-is.
func normalizeUndeclared(start time.Time, _ *time.Location) time.Time {
	return start
}

// NormalizeOfficeDays converts raw calendar events into office-day entries in
// the display location loc. Only all-day events titled "Office Day" qualify;
// everything else is discarded. Output is ordered most recent first.
func NormalizeOfficeDays(events []calendar.Event, loc *time.Location) []calendar.OfficeDayEvent {
	officeDays := make([]calendar.OfficeDayEvent, 0, len(events))

	for _, ev := range events {
		if ev.Title != calendar.OfficeDayTitle || !ev.AllDay {
			continue
		}

		var start time.Time
		switch classifyZone(ev.TimeZone) {
		case zoneDeclaredUTC:
			start = normalizeUTCDeclared(ev.StartDate, loc)
		case zoneDeclaredOther:
			start = normalizeOtherDeclared(ev.StartDate, loc)
		default:
			start = normalizeUndeclared(ev.StartDate, loc)
		}

		officeDays = append(officeDays, calendar.OfficeDayEvent{
			ID:        ev.ID,
			Title:     ev.Title,
			StartDate: start,
			EndDate:   ev.EndDate,
		})
	}

	sort.Slice(officeDays, func(i, j int) bool {
		return officeDays[i].StartDate.After(officeDays[j].StartDate)
	})

	return officeDays
}
