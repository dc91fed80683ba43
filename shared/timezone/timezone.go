package timezone

import (
	"fmt"
	"time"

	"studyroom/config"
	"studyroom/shared/constant"

	"github.com/rs/zerolog/log"
)

var appLocation *time.Location

func init() {
	Load(config.Get().App.Timezone)
}

// Load switches the application location. Unknown names fall back to UTC.
func Load(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().Str("timezone", name).Msg("Application timezone initialized")
}

func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func Today() time.Time {
	return StartOfDay(Now())
}

// ParseDay parses a YYYY-MM-DD calendar date at local midnight.
func ParseDay(value string) (time.Time, error) {
	day, err := Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return day, nil
}

func FormatDay(t time.Time) string {
	return Format(t, constant.DayFormat)
}

// MinuteOfDay returns the local minutes elapsed since midnight of t.
func MinuteOfDay(t time.Time) int {
	t = ToAppTime(t)

	return t.Hour()*60 + t.Minute()
}
