package handlers

import (
	"jobtrack/internal/models"
	"jobtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler accepts public contact-form submissions.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleContact)
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// HandleContact relays the message and answers 202 whether or not relaying succeeds.
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	h.service.Submit(models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Message received"})
}
