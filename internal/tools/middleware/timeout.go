package middleware

import (
	"context"
	"time"
)

// Timeout enforces a per-call deadline for tool execution.
func Timeout(d time.Duration) Middleware {
	return func(next ToolFunc) ToolFunc {
		if d <= 0 {
			return next
		}

		return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
			ctxWithTimeout, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctxWithTimeout, args)
		}
	}
}
