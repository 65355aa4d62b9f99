package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day in minutes since midnight. It has
// no date and no timezone; combining it with a calendar date in the salon's
// location is the only way to obtain an absolute instant.
type ClockTime int

// ParseClock parses "HH:MM" (seconds, if present, are ignored).
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: bad hour", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: bad minute", s)
	}

	return ClockTime(hour*60 + minute), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) Add(minutes int) ClockTime {
	return c + ClockTime(minutes)
}

// ParseDate parses "YYYY-MM-DD" as midnight of that calendar day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return date, nil
}

// DayOfWeek returns the calendar day-of-week of date in its own location,
// Sunday = 0. Callers must pass dates already anchored in the salon's
// location so a UTC shift can never move the weekday.
func DayOfWeek(date time.Time) int32 {
	return int32(date.Weekday())
}

// At combines a calendar date with a wall-clock time into an absolute
// instant in the date's location. Built via time.Date rather than
// duration arithmetic so DST transitions cannot drift the wall clock.
func At(date time.Time, c ClockTime) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, date.Location())
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}
