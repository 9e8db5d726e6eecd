package tools

import (
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"citypulse/internal/adapters/config"
	"citypulse/internal/tools/cities"
	"citypulse/internal/tools/clock"
	"citypulse/internal/tools/middleware"
	"citypulse/internal/tools/weather"
	"citypulse/pkg/errors"
)

// Tool names as the model sees them.
const (
	WeatherTool = "get_weather"
	TimeTool    = "get_current_time"
	CitiesTool  = "list_supported_cities"
)

// Definition declares a catalog tool before it is bound to the framework.
type Definition struct {
	Name        string
	Description string
	Handler     middleware.ToolFunc
}

// Definitions returns the built-in tool set.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        WeatherTool,
			Description: "Retrieves the current weather report for a specified city. Supported cities: London, New York, San Francisco.",
			Handler:     weather.Handler,
		},
		{
			Name:        TimeTool,
			Description: "Returns the current local time in a specified city. Supported cities: London, New York, Paris, San Francisco, Tokyo.",
			Handler:     clock.NewHandler(nil),
		},
		{
			Name:        CitiesTool,
			Description: "Lists the cities supported by the weather and time tools.",
			Handler:     cities.Handler,
		},
	}
}

// Build wraps a definition's handler with the given middleware and binds it as
// a framework tool.
func Build(def Definition, mws ...middleware.Middleware) (tool.Tool, error) {
	handler := middleware.Chain(def.Handler, mws...)

	t, err := functiontool.New(functiontool.Config{
		Name:        def.Name,
		Description: def.Description,
	}, func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
		return handler(ctx, args)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "build tool %s", def.Name)
	}

	return t, nil
}

// RegisterAll builds every catalog tool with the standard middleware stack and
// registers it.
func RegisterAll(registry *Registry, cfg config.ToolsConfig) error {
	for _, def := range Definitions() {
		mws := []middleware.Middleware{
			middleware.Observe(def.Name),
			middleware.Timeout(cfg.Timeout),
		}
		if cfg.RateLimit > 0 {
			mws = append(mws, middleware.RateLimit(cfg.RateLimit))
		}

		t, err := Build(def, mws...)
		if err != nil {
			return err
		}
		registry.Register(def.Name, t)
	}

	return nil
}
