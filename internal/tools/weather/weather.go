// Package weather implements the get_weather tool: a lookup over a small
// static table of city conditions.
package weather

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"citypulse/internal/tools/middleware"
	"citypulse/pkg/errors"
)

// Report holds the static weather record for a supported city.
type Report struct {
	City      string
	Condition string
	TempC     int
	TempF     int
}

// Text renders the report the way the concierge agent relays it.
func (r Report) Text() string {
	return fmt.Sprintf(
		"The weather in %s is %s with a temperature of %d degrees Celsius (%d degrees Fahrenheit).",
		r.City, r.Condition, r.TempC, r.TempF,
	)
}

// reports is keyed by lowercased city name. The data is hand-authored and
// immutable for the lifetime of the process.
var reports = map[string]Report{
	"new york":      {City: "New York", Condition: "sunny", TempC: 25, TempF: 77},
	"san francisco": {City: "San Francisco", Condition: "foggy", TempC: 18, TempF: 64},
	"london":        {City: "London", Condition: "rainy", TempC: 12, TempF: 54},
}

// Lookup returns the weather report for a city, matching case-insensitively.
func Lookup(city string) (Report, bool) {
	r, ok := reports[strings.ToLower(strings.TrimSpace(city))]
	return r, ok
}

// Cities returns the supported city names, sorted.
func Cities() []string {
	names := make([]string, 0, len(reports))
	for _, r := range reports {
		names = append(names, r.City)
	}
	sort.Strings(names)
	return names
}

// Handler answers a get_weather call. Unknown cities produce a structured
// error result rather than a Go error so the agent can apologize in natural
// language.
func Handler(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	city, ok := args["city"].(string)
	if !ok || strings.TrimSpace(city) == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "city is required")
	}

	report, ok := Lookup(city)
	if !ok {
		return map[string]interface{}{
			"status":        "error",
			"error_message": fmt.Sprintf("Weather information for '%s' is not available.", city),
		}, nil
	}

	return map[string]interface{}{
		"status": "success",
		"report": report.Text(),
	}, nil
}

var _ middleware.ToolFunc = Handler
