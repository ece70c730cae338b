package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat flags malformed "HH:MM" times or "YYYY-MM-DD" dates.
var ErrInvalidTimeFormat = errors.New("invalid_time_format")

var timeOfDayRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

const dateLayout = "2006-01-02"

// ParseTimeOfDay converts an "HH:MM" string into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	m := timeOfDayRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, ErrInvalidTimeFormat
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// IntervalsOverlap reports whether the half-open intervals [aStart,aEnd)
// and [bStart,bEnd) intersect. Intervals that merely touch do not overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// DurationLabel renders the span between two minute offsets as a short
// human string: "1h 30m", "45m", "2h". Negative spans clamp to "0m".
func DurationLabel(start, end int) string {
	total := end - start
	if total < 0 {
		total = 0
	}
	hours := total / 60
	minutes := total % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// ParseDate validates a calendar date in "YYYY-MM-DD" form and returns
// it as a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return t, nil
}

// CombineDateTime resolves a date string plus an "HH:MM" time of day
// into a single UTC instant.
func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(time.Duration(minutes) * time.Minute), nil
}

var isoWeekRe = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// IsoWeek returns the ISO-8601 week identifier for t, e.g. "2024-W01".
// Week 1 is the week containing the year's first Thursday.
func IsoWeek(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// CurrentIsoWeek returns the ISO week identifier for the current instant.
func CurrentIsoWeek() string {
	return IsoWeek(time.Now())
}

// IsValidIsoWeek checks the "YYYY-Www" shape of a week identifier.
func IsValidIsoWeek(week string) bool {
	return isoWeekRe.MatchString(week)
}
