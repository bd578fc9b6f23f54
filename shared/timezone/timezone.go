package timezone

import (
	"sync/atomic"
	"time"
	_ "time/tzdata" // zoneinfo for images without /usr/share/zoneinfo

	"lodge/config"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

func init() {
	SetLocation(config.Get().App.Timezone)
}

// SetLocation switches the application timezone by IANA name. An empty or unknown name
// leaves the application on UTC.
func SetLocation(name string) *time.Location {
	loc := time.UTC

	switch {
	case name == "":
		log.Warn().Msg("no timezone configured, using UTC")
	default:
		loaded, err := time.LoadLocation(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")

			break
		}

		loc = loaded
	}

	location.Store(loc)
	log.Debug().Str("timezone", loc.String()).Msg("application timezone set")

	return loc
}

// Location returns the application timezone.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders an instant in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// Today returns the current calendar day of the application timezone as a UTC midnight date.
func Today() time.Time {
	year, month, day := Now().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date into a UTC midnight date.
// Calendar dates carry no zone so weekday and month checks never shift across midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value) //nolint:wrapcheck
}

// DateOrToday parses a YYYY-MM-DD calendar date; an empty value means today.
func DateOrToday(value string) (time.Time, error) {
	if value == "" {
		return Today(), nil
	}

	return ParseDate(value)
}
