// Package schedule holds the calendar and time-of-day arithmetic shared by
// the conflict checker and the booking lifecycle. All functions are pure.
package schedule

import (
	"regexp"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// EndOfDayMinutes is the conservative default for open-ended bookings: a
// missing or unparseable end time occupies the rest of the day.
const EndOfDayMinutes = 23*60 + 59

// Accepts both token families the booking form produces: "9:00" and "9h00".
var timeTokenRe = regexp.MustCompile(`^([0-9]{1,2})[:hH]([0-9]{2})$`)

// ExpandDateRange returns every calendar date between start and end,
// inclusive. When end is empty, unparseable, or before start, the range
// collapses to just the start date.
func ExpandDateRange(start, end string) []string {
	from, err := time.Parse(DateLayout, start)
	if err != nil {
		return []string{start}
	}

	to, err := time.Parse(DateLayout, end)
	if err != nil || to.Before(from) {
		return []string{start}
	}

	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// DatesIntersect reports whether the two date sets share at least one day.
func DatesIntersect(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, d := range a {
		set[d] = struct{}{}
	}
	for _, d := range b {
		if _, ok := set[d]; ok {
			return true
		}
	}
	return false
}

// ParseTimeOfDay converts a time token into minutes since midnight.
func ParseTimeOfDay(token string) (int, bool) {
	m := timeTokenRe.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// NormalizeStart treats a missing or malformed start time as midnight.
func NormalizeStart(token string) int {
	if minutes, ok := ParseTimeOfDay(token); ok {
		return minutes
	}
	return 0
}

// NormalizeEnd treats a missing or malformed end time as end of day.
func NormalizeEnd(token string) int {
	if minutes, ok := ParseTimeOfDay(token); ok {
		return minutes
	}
	return EndOfDayMinutes
}

// TimesOverlap uses half-open interval semantics: a booking ending exactly
// when another starts does not conflict.
func TimesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// CombineDateTime resolves a date plus a time-of-day token into an instant.
// A malformed time token falls back to midnight so the caller still gets a
// usable anchor for the booking day.
func CombineDateTime(date, token string) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, err
	}

	minutes := NormalizeStart(token)
	return day.Add(time.Duration(minutes) * time.Minute), nil
}
