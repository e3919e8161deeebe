package news

import (
	"regexp"
	"strings"
	"time"
)

// DefaultWindowDays is the trailing window applied when a request names no date.
const DefaultWindowDays = 7

var isoDatePattern = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

// DateRange is an inclusive interval of instants. Start never exceeds End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// SingleDay returns the range covering one calendar day in the given location.
func SingleDay(day time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// ParseRequest derives a date range from free-form request text.
//
// "today" and "yesterday" (case-insensitive) map to the matching calendar
// day, an explicit YYYY-MM-DD date maps to that day, and anything else
// falls back to the trailing default window ending at now. Unrecognized
// phrasing is not an error; the fallback is the documented default.
func ParseRequest(text string, now time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "yesterday"):
		return SingleDay(now.AddDate(0, 0, -1), loc)
	case strings.Contains(lower, "today"):
		return SingleDay(now, loc)
	}

	if match := isoDatePattern.FindString(text); match != "" {
		if day, err := time.ParseInLocation("2006-01-02", match, loc); err == nil {
			return SingleDay(day, loc)
		}
	}

	return DateRange{
		Start: now.AddDate(0, 0, -DefaultWindowDays),
		End:   now,
	}
}
