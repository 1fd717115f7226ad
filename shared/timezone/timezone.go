package timezone

import (
	"bookit/config"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultTimezone = "UTC"

var (
	appLocation *time.Location
	mu          sync.RWMutex
)

func init() {
	if err := Init(config.Get().App.Timezone); err != nil {
		log.Error().
			Err(err).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'Europe/London'")
	}
}

// Init sets the application location. An empty name selects UTC; an unknown one
// leaves UTC in place and returns the load error.
func Init(name string) error {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = defaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		setLocation(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	setLocation(loc)
	log.Debug().Str("timezone", name).Msg("Application timezone initialized")

	return nil
}

func setLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// StartOfDay truncates t to midnight in the application timezone.
func StartOfDay(t time.Time) time.Time {
	local := ToAppTime(t)
	year, month, day := local.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, GetLocation())
}

// Today is StartOfDay(Now()).
func Today() time.Time {
	return StartOfDay(Now())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
