package timezone

import (
	"frontdesk/config"
	"frontdesk/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Almaty', 'UTC', 'Europe/London'")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// Now returns the current time in the hotel's timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current hotel day.
func Today() time.Time {
	return StartOfDay(Now())
}

// GetLocation returns the hotel's timezone, UTC when it was never resolved.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// ToAppTime converts a time to the hotel's timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// StartOfDay truncates t to midnight in the hotel's timezone.
func StartOfDay(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, GetLocation())
}

// ParseDate parses a YYYY-MM-DD calendar date as hotel-local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateFormat, value, GetLocation())
}

// DateOf renders the hotel-local calendar date of t.
func DateOf(t time.Time) string {
	return ToAppTime(t).Format(constant.DateFormat)
}
