package timezone

import (
	"rentdesk/config"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation = time.UTC
	clock       atomic.Pointer[func() time.Time]
)

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	if fn := clock.Load(); fn != nil {
		return (*fn)().In(appLocation)
	}

	return time.Now().In(appLocation)
}

// Freeze makes Now return t until the returned func is called.
func Freeze(t time.Time) (restore func()) {
	fixed := func() time.Time { return t }
	clock.Store(&fixed)

	return func() { clock.Store(nil) }
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads a wall-clock value as office time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
