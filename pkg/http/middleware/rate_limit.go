package httpmiddleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/ratelimit"
)

// RateLimit applies a leaky-bucket limiter to the wrapped routes. Requests
// are never rejected, only delayed, which is enough to blunt credential
// stuffing against the login endpoints.
func RateLimit(rps int) echo.MiddlewareFunc {
	limiter := ratelimit.New(rps, ratelimit.Per(time.Second))
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter.Take()
			return next(c)
		}
	}
}
