package handlers

import (
	"log"

	"jobtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles signup, login and account endpoints.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the authentication routes. limit guards the public
// credential endpoints; requireAuth guards the account endpoints.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth, limit fiber.Handler) {
	router.Post("/signup", limit, h.HandleSignup)
	router.Post("/login", limit, h.HandleLogin)
	router.Get("/getuser", requireAuth, h.HandleGetUser)
	router.Post("/verify-password", requireAuth, h.HandleVerifyPassword)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// HandleSignup registers a new user.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.authService.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		log.Printf("Signup failed for %s: %v", req.Username, err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks credentials and issues a session token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Username, err)
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// HandleGetUser returns the caller's account without the password hash.
func (h *AuthHandler) HandleGetUser(c *fiber.Ctx) error {
	user, err := h.authService.GetUser(currentUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// VerifyPasswordRequest represents the request body for password re-verification.
type VerifyPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) HandleVerifyPassword(c *fiber.Ctx) error {
	var req VerifyPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := h.authService.VerifyPassword(currentUsername(c), req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password verified"})
}
