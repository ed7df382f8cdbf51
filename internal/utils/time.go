package utils

import (
	"fmt"
	"time"

	"github.com/ykhara/lamiope/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseClock parses a clock string in the standard format (HH:MM).
func ParseClock(clock string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, clock)
}

// FormatClock formats a time as an HH:MM clock string.
func FormatClock(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ValidateClockFormat checks if the string matches the standard clock format.
func ValidateClockFormat(clock string) bool {
	_, err := ParseClock(clock)
	return err == nil
}

// ClockToMinutes parses a clock string (HH:MM) and returns the number of
// minutes from midnight.
func ClockToMinutes(clock string) (int, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AtClock returns the given day with its clock set to the HH:MM string.
func AtClock(day time.Time, clock string) (time.Time, error) {
	t, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// MinutesBetween returns the whole minutes from a to b, truncated toward zero.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a).Minutes())
}
