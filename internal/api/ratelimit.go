package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ytget/svd/internal/model"
	"github.com/ytget/svd/internal/ratelimit"
)

const msgRateLimited = "Too many requests. Please try again later."

// RateLimit rejects requests over the per-client admission ceiling. The
// client key is the real IP (X-Forwarded-For aware via echo), so all
// requests from one caller share a window regardless of connection reuse.
func RateLimit(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if key == "" {
				key = "unknown"
			}

			if !limiter.Allow(key) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				fail := model.NewFailure(model.FailureRateLimited, msgRateLimited)
				return c.JSON(fail.Kind.HTTPStatus(), echo.Map{"error": fail.Message})
			}
			return next(c)
		}
	}
}
