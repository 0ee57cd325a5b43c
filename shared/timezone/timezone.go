// Package timezone pins every timestamp the service writes or renders to the configured TIMEZONE.
package timezone

import (
	"time"

	"adscape/config"

	"github.com/rs/zerolog/log"
)

var location = time.UTC

func init() {
	location = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name. Blank or unknown names fall back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

func Format(t time.Time, layout string) string {
	return t.In(location).Format(layout)
}
