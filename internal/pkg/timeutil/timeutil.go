package timeutil

import (
	"strings"
	"time"
)

// Accepted layouts for local wall-clock inputs coming from forms or query
// strings. The first one matches the HTML datetime-local format.
var layouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseLocal parses a date-and-time string in local wall-clock form.
// It returns false (not an error) for empty or unparseable input.
func ParseLocal(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CeilHoursBetween returns the smallest whole number of hours covering the
// elapsed duration between start and end. Partial hours round up, so a
// 61-minute span bills as 2 hours. Non-positive durations bill as 0.
func CeilHoursBetween(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	hours := d / time.Hour
	if d%time.Hour != 0 {
		hours++
	}
	return int(hours)
}
