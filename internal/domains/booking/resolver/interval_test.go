package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyroom/internal/domains/booking/resolver"
	"studyroom/shared/failure"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    resolver.Interval
		wantErr error
	}{
		{name: "one hour", start: "09:00", end: "10:00", want: resolver.Interval{Start: 540, End: 600}},
		{name: "exactly six hours", start: "08:00", end: "14:00", want: resolver.Interval{Start: 480, End: 840}},
		{name: "six hours and one minute", start: "08:00", end: "14:01", wantErr: resolver.ErrTooLong},
		{name: "zero length", start: "10:00", end: "10:00", wantErr: failure.EndBeforeStart},
		{name: "end before start", start: "11:00", end: "10:00", wantErr: failure.EndBeforeStart},
		{name: "until midnight", start: "18:00", end: "24:00", want: resolver.Interval{Start: 1080, End: 1440}},
		{name: "start at midnight sentinel", start: "24:00", end: "24:00", wantErr: failure.InvalidTimeRange},
		{name: "single digit hour", start: "9:00", end: "10:00", wantErr: failure.InvalidTimeRange},
		{name: "hour out of range", start: "09:00", end: "25:00", wantErr: failure.InvalidTimeRange},
		{name: "empty", start: "", end: "", wantErr: failure.InvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Validate(tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	_, err := resolver.Validate("08:00", "14:01")
	assert.Equal(t, "You cannot book more than 6 hours.", failure.GetMessage(err))

	_, err = resolver.Validate("11:00", "10:00")
	assert.Equal(t, "End time must be after start time.", failure.GetMessage(err))
}

func TestInterval_Overlaps(t *testing.T) {
	existing := resolver.Interval{Start: 600, End: 660}

	tests := []struct {
		name  string
		other resolver.Interval
		want  bool
	}{
		{name: "ends where existing starts", other: resolver.Interval{Start: 540, End: 600}, want: false},
		{name: "starts where existing ends", other: resolver.Interval{Start: 660, End: 720}, want: false},
		{name: "straddles start", other: resolver.Interval{Start: 570, End: 630}, want: true},
		{name: "inside", other: resolver.Interval{Start: 610, End: 620}, want: true},
		{name: "covers", other: resolver.Interval{Start: 500, End: 800}, want: true},
		{name: "same", other: existing, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(existing))
		})
	}
}
