// Package cities implements the list_supported_cities tool.
package cities

import (
	"context"

	"citypulse/internal/tools/clock"
	"citypulse/internal/tools/middleware"
	"citypulse/internal/tools/weather"
)

// Handler returns the cities each lookup tool can answer for, so the agent can
// ground refusals instead of guessing.
func Handler(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
	return map[string]interface{}{
		"status":         "success",
		"weather_cities": weather.Cities(),
		"time_cities":    clock.Cities(),
	}, nil
}

var _ middleware.ToolFunc = Handler
