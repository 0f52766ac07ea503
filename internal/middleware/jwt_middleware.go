package middleware

import (
	"log"
	"strings"

	"jobtrack/pkg/apperror"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// TokenValidator verifies a session token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.MapClaims, error)
}

// AuthRequired checks the bearer token. Every failure is reported with the same
// 401 body; the cause is only logged.
func AuthRequired(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return apperror.Unauthorized("Invalid or expired token")
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return apperror.Unauthorized("Invalid or expired token")
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])

		return c.Next()
	}
}
