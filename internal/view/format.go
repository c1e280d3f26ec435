package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"day-planner/internal/domain"
)

// twelveHour maps a 24-hour value to its 12-hour display number and suffix.
// Values past 23 keep counting rather than wrapping.
func twelveHour(hour int) (int, string) {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	switch {
	case hour == 0:
		return 12, suffix
	case hour > 12:
		return hour - 12, suffix
	default:
		return hour, suffix
	}
}

func parseHour(key string) (int, bool) {
	hour, err := strconv.Atoi(key)
	if err != nil || hour < 0 {
		return 0, false
	}
	return hour, true
}

// HourLabel returns the header for an hour group, e.g. "09" -> "9 AM".
// A key that is not a number is returned unchanged.
func HourLabel(hourKey string) string {
	hour, ok := parseHour(hourKey)
	if !ok {
		return hourKey
	}
	display, suffix := twelveHour(hour)
	return fmt.Sprintf("%d %s", display, suffix)
}

// FormatTime renders "HH:MM" in 12-hour form, e.g. "14:05" -> "2:05 PM".
// The minutes are kept verbatim. Values without a numeric hour are returned
// unchanged.
func FormatTime(t domain.ClockTime) string {
	hourKey, minutes, ok := strings.Cut(string(t), ":")
	if !ok {
		return string(t)
	}
	hour, ok := parseHour(hourKey)
	if !ok {
		return string(t)
	}
	display, suffix := twelveHour(hour)
	return fmt.Sprintf("%d:%s %s", display, minutes, suffix)
}

// CategoryLabel capitalizes the first letter of a category for display
func CategoryLabel(c domain.Category) string {
	s := string(c)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
