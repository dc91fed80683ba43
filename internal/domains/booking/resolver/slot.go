package resolver

import (
	"cmp"
	"slices"

	"studyroom/shared/wallclock"
)

// Suggestion is the next free slot with the requested length.
// PastEndOfDay is set when it would run beyond midnight.
type Suggestion struct {
	Interval
	PastEndOfDay bool
}

func (s Suggestion) StartDisplay() string {
	return wallclock.DisplayMinutes(s.Start)
}

func (s Suggestion) EndDisplay() string {
	return wallclock.DisplayMinutes(s.End)
}

// NextFreeSlot sweeps the day's bookings once, starting at the requested start,
// and returns the first gap long enough for the requested duration. The result
// never starts before the request.
func NextFreeSlot(requested Interval, bookings []Interval) Suggestion {
	sorted := slices.Clone(bookings)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	duration := requested.Duration()
	cursor := requested.Start

	for _, booking := range sorted {
		candidate := Interval{Start: cursor, End: cursor + duration}
		if candidate.End <= booking.Start {
			break
		}

		if candidate.Overlaps(booking) {
			cursor = booking.End
		}
	}

	slot := Interval{Start: cursor, End: cursor + duration}

	return Suggestion{
		Interval:     slot,
		PastEndOfDay: slot.End > wallclock.MinutesPerDay,
	}
}
