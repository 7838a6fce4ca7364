package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradebitsix/Drive-time/internal/api/metrics"
	"github.com/tradebitsix/Drive-time/internal/infrastructure/db/redis"
)

// LoginRateLimit throttles a route per client IP using the Redis-backed
// fixed-window limiter. The limiter fails open: when Redis is unreachable
// the request proceeds and the outage is logged.
func LoginRateLimit(limiter *redis.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), "login", c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
