package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/altosdelparque/residential-system/internal/api/metrics"
)

// RateLimitStore abstracts the fixed-window counter backend (Redis).
type RateLimitStore interface {
	Incr(ctx context.Context, scope, client string, window time.Duration) (int64, error)
}

// RateLimit caps the number of requests per client IP within a fixed window.
// When the counter backend is unreachable the request is let through: losing
// brute-force protection briefly beats taking down login for everyone.
func RateLimit(store RateLimitStore, scope string, limit int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := store.Incr(c.Request().Context(), scope, c.RealIP(), window)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count > limit {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, please try again later")
			}

			return next(c)
		}
	}
}
