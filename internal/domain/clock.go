package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day in zero-padded "HH:MM" form.
// Zero-padded values sort chronologically under plain string comparison.
type ClockTime string

// ParseClockTime accepts "H:MM" or "HH:MM" in 24-hour form and returns the
// zero-padded value.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	hourPart, minutePart, ok := strings.Cut(s, ":")
	if !ok || len(minutePart) != 2 || len(hourPart) < 1 || len(hourPart) > 2 || !digits(hourPart) || !digits(minutePart) {
		return "", fmt.Errorf("time %q must be in HH:MM form", s)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("hour in %q must be between 00 and 23", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("minute in %q must be between 00 and 59", s)
	}

	return ClockTime(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// HourKey returns the text before the first colon, e.g. "09" for "09:15".
func (c ClockTime) HourKey() string {
	hour, _, _ := strings.Cut(string(c), ":")
	return hour
}

// MinuteKey returns the text after the first colon, verbatim.
func (c ClockTime) MinuteKey() string {
	_, minute, _ := strings.Cut(string(c), ":")
	return minute
}

// Hour returns the numeric hour component.
func (c ClockTime) Hour() (int, error) {
	return strconv.Atoi(c.HourKey())
}

// IsValid reports whether c is a well-formed zero-padded time of day.
func (c ClockTime) IsValid() bool {
	parsed, err := ParseClockTime(string(c))
	return err == nil && parsed == c
}

// String returns the raw "HH:MM" value.
func (c ClockTime) String() string {
	return string(c)
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
