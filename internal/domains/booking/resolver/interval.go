package resolver

import (
	"net/http"

	"studyroom/shared/failure"
	"studyroom/shared/wallclock"
)

// MaxDuration is the longest booking accepted, in minutes.
const MaxDuration = 6 * 60

var ErrTooLong = &failure.Failure{Code: http.StatusBadRequest, Message: "You cannot book more than 6 hours."}

type Interval struct {
	Start int
	End   int
}

func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether the two intervals share at least one minute.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

// Validate parses a requested "HH:MM" pair. The end must follow the start and
// the span may not exceed MaxDuration; "24:00" is accepted as an end.
func Validate(start, end string) (Interval, error) {
	startMinute, startErr := wallclock.MinutesOfDay(start)
	endMinute, endErr := wallclock.MinutesOfDay(end)

	if startErr != nil || endErr != nil || startMinute >= wallclock.MinutesPerDay {
		return Interval{}, failure.InvalidTimeRange
	}

	requested := Interval{Start: startMinute, End: endMinute}

	if requested.End <= requested.Start {
		return Interval{}, failure.EndBeforeStart
	}

	if requested.Duration() > MaxDuration {
		return Interval{}, ErrTooLong
	}

	return requested, nil
}
