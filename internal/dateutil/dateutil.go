// Package dateutil provides day-granularity date arithmetic over the
// "YYYY-MM-DD" strings the state tree stores. Every function takes the
// current time explicitly so callers and tests control the clock.
package dateutil

import (
	"math"
	"time"
)

// Layout is the wire format for day-granularity dates.
const Layout = "2006-01-02"

// Today returns the current date at day granularity.
func Today(now time.Time) string {
	return now.Format(Layout)
}

// Parse parses a day-granularity date string at local midnight.
func Parse(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(Layout, dateStr, loc)
}

// DaysUntil returns the number of whole days between now and the target
// date's midnight, and false when dateStr is empty or unparsable.
//
// The difference is floored against the wall-clock now, not midnight to
// midnight, so late in the day the result reads one lower than the
// calendar-day difference. The reminder window depends on exactly this
// truncation.
func DaysUntil(dateStr string, now time.Time) (int, bool) {
	if dateStr == "" {
		return 0, false
	}
	target, err := Parse(dateStr, now.Location())
	if err != nil {
		return 0, false
	}
	diff := target.Sub(now)
	return int(math.Floor(diff.Hours() / 24)), true
}

// AddDays shifts a date string by the given number of calendar days. The
// input is returned unchanged when it does not parse.
func AddDays(dateStr string, days int) string {
	t, err := Parse(dateStr, time.Local)
	if err != nil {
		return dateStr
	}
	return t.AddDate(0, 0, days).Format(Layout)
}

// Format renders a date string in short month/day form. Empty input yields
// the "No date" placeholder; unparsable input is echoed back unchanged.
func Format(dateStr string) string {
	if dateStr == "" {
		return "No date"
	}
	t, err := Parse(dateStr, time.Local)
	if err != nil {
		return dateStr
	}
	return t.Format("Jan 2")
}
