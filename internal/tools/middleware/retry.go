package middleware

import (
	"context"
	"time"
)

// Retry retries tool execution on error with optional backoff. The error from
// the last attempt is returned.
func Retry(attempts int, backoff time.Duration) Middleware {
	return func(next ToolFunc) ToolFunc {
		if attempts <= 1 {
			return next
		}

		return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
			var result map[string]interface{}
			var err error

			for i := 0; i < attempts; i++ {
				result, err = next(ctx, args)
				if err == nil {
					return result, nil
				}

				if backoff > 0 && i < attempts-1 {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(backoff):
					}
				}
			}

			return result, err
		}
	}
}
