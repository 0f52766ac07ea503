package middleware_test

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"jobtrack/internal/handlers"
	"jobtrack/internal/middleware"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (jwt.MapClaims, error) {
	if token == "good" {
		return jwt.MapClaims{"username": "alice", "user_id": "u-1"}, nil
	}
	return nil, errors.New("signature is invalid")
}

type countingLimiter struct {
	limit int
	seen  map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, key string) bool {
	l.seen[key]++
	return l.seen[key] <= l.limit
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
}

func TestAuthRequired(t *testing.T) {
	app := newApp()
	app.Get("/me", middleware.AuthRequired(stubValidator{}), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})

	cases := map[string]int{
		"":              http.StatusUnauthorized,
		"Bearer":        http.StatusUnauthorized,
		"Basic good":    http.StatusUnauthorized,
		"Bearer bad":    http.StatusUnauthorized,
		"Bearer good":   http.StatusOK,
		"bearer   good": http.StatusOK,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, want, resp.StatusCode, header)
		if want == http.StatusUnauthorized {
			assert.JSONEq(t, `{"message":"Invalid or expired token"}`, string(body), header)
		} else {
			assert.Equal(t, "alice", string(body))
		}
	}
}

func TestRateLimit(t *testing.T) {
	app := newApp()
	limiter := &countingLimiter{limit: 2, seen: map[string]int{}}
	app.Post("/login", middleware.RateLimit(limiter, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	app := newApp()
	app.Post("/login", middleware.RateLimit(nil, "login"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
