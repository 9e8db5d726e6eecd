// Package clock implements the get_current_time tool: current wall-clock time
// for a fixed set of cities, derived from IANA timezone identifiers.
package clock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"citypulse/internal/tools/middleware"
	"citypulse/pkg/errors"
)

// Layout matches the original report format: "2024-01-02 15:04:05 JST+0900".
const Layout = "2006-01-02 15:04:05 MST-0700"

// zones maps lowercased city names to IANA timezone identifiers.
var zones = map[string]struct {
	City string
	Zone string
}{
	"new york":      {City: "New York", Zone: "America/New_York"},
	"san francisco": {City: "San Francisco", Zone: "America/Los_Angeles"},
	"london":        {City: "London", Zone: "Europe/London"},
	"tokyo":         {City: "Tokyo", Zone: "Asia/Tokyo"},
	"paris":         {City: "Paris", Zone: "Europe/Paris"},
}

// Zone returns the IANA timezone identifier for a city, matching
// case-insensitively.
func Zone(city string) (string, bool) {
	z, ok := zones[strings.ToLower(strings.TrimSpace(city))]
	return z.Zone, ok
}

// Cities returns the supported city names, sorted.
func Cities() []string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.City)
	}
	sort.Strings(names)
	return names
}

// Clock supplies the current instant; injectable for tests.
type Clock func() time.Time

// Report formats the local time in the given city at the instant supplied by
// now. The second return value is false when the city is unsupported.
func Report(now Clock, city string) (string, bool, error) {
	z, ok := zones[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return "", false, nil
	}

	loc, err := time.LoadLocation(z.Zone)
	if err != nil {
		return "", true, errors.Wrapf(errors.ErrTimezoneUnavailable, "load %s", z.Zone)
	}

	report := fmt.Sprintf("The current time in %s is %s", z.City, now().In(loc).Format(Layout))
	return report, true, nil
}

// NewHandler builds the get_current_time handler around the given clock.
func NewHandler(now Clock) middleware.ToolFunc {
	if now == nil {
		now = time.Now
	}

	return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		city, ok := args["city"].(string)
		if !ok || strings.TrimSpace(city) == "" {
			return nil, errors.Wrap(errors.ErrInvalidInput, "city is required")
		}

		report, known, err := Report(now, city)
		if err != nil {
			return nil, err
		}
		if !known {
			return map[string]interface{}{
				"status":        "error",
				"error_message": fmt.Sprintf("Sorry, I don't have timezone information for %s.", city),
			}, nil
		}

		return map[string]interface{}{
			"status": "success",
			"report": report,
		}, nil
	}
}
