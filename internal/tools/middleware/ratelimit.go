package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"citypulse/pkg/errors"
)

// RateLimit caps tool invocations at reqPerMinute using a shared token bucket.
// A non-positive rate disables limiting.
func RateLimit(reqPerMinute float64) Middleware {
	return func(next ToolFunc) ToolFunc {
		if reqPerMinute <= 0 {
			return next
		}

		burst := int(reqPerMinute / 10)
		if burst < 1 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(reqPerMinute/60.0), burst)

		return func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
			if err := limiter.Wait(ctx); err != nil {
				return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
			}
			return next(ctx, args)
		}
	}
}
