package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mvalderrama/flightfunnel/internal/models"
	"github.com/mvalderrama/flightfunnel/internal/ratelimit"
)

// RateLimit rejects requests from clients that exhausted their token bucket.
// Buckets are keyed by remote IP.
func RateLimit(limiter *ratelimit.ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
