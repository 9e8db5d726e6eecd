package middleware

import (
	"context"
	"time"

	"citypulse/internal/metrics"
	"citypulse/pkg/logger"
)

// Observe records structured logs and Prometheus metrics for every call of
// the named tool.
func Observe(name string) Middleware {
	return func(next ToolFunc) ToolFunc {
		log := logger.Get().With("tool", name)

		return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
			start := time.Now()
			result, err := next(ctx, args)
			duration := time.Since(start)

			metrics.ObserveToolCall(name, duration, err)

			if err != nil {
				log.Warnf("tool call failed after %s: %v", duration, err)
			} else {
				log.Debugf("tool call completed in %s", duration)
			}

			return result, err
		}
	}
}
