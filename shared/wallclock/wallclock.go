// Package wallclock converts between "HH:MM" strings, minutes since midnight and
// the 12 hour display form shown on booking pages.
package wallclock

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerDay = 24 * 60
	LastMinute    = MinutesPerDay - 1

	// EndOfDay is the exclusive end sentinel accepted in place of midnight.
	EndOfDay = "24:00"
)

// FormatError reports a clock string that is not a valid 24 hour "HH:MM".
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid clock value %q, expected HH:MM", e.Value)
}

// MinutesOfDay parses "HH:MM" into minutes since midnight. "24:00" yields 1440.
func MinutesOfDay(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == EndOfDay {
		return MinutesPerDay, nil
	}

	hh, mm, ok := strings.Cut(value, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, &FormatError{Value: value}
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, &FormatError{Value: value}
	}

	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, &FormatError{Value: value}
	}

	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM", clamped to 00:00..23:59.
func FormatMinutes(minutes int) string {
	minutes = clamp(minutes)

	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ToDisplay converts "HH:MM" into "hh:MM AM" form. "24:00" renders as 11:59 PM.
func ToDisplay(value string) (string, error) {
	minutes, err := MinutesOfDay(value)
	if err != nil {
		return "", err
	}

	return DisplayMinutes(minutes), nil
}

// DisplayMinutes is ToDisplay for a value that is already in minutes.
func DisplayMinutes(minutes int) string {
	minutes = clamp(minutes)

	hours, suffix := minutes/60, "AM"
	if hours >= 12 {
		suffix = "PM"
	}

	hours %= 12
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hours, minutes%60, suffix)
}

// Valid reports whether value parses as a clock string, the end-of-day sentinel included.
func Valid(value string) bool {
	_, err := MinutesOfDay(value)

	return err == nil
}

func clamp(minutes int) int {
	switch {
	case minutes < 0:
		return 0
	case minutes > LastMinute:
		return LastMinute
	default:
		return minutes
	}
}
