package middleware

import (
	"context"

	"jobtrack/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// Limiter decides whether another request for key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit rejects requests with 429 once the client IP exceeds its quota.
// A nil limiter disables limiting.
func RateLimit(limiter Limiter, scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		if !limiter.Allow(c.UserContext(), scope+":"+c.IP()) {
			return apperror.TooManyRequests("Too many requests, please try again later")
		}
		return c.Next()
	}
}
