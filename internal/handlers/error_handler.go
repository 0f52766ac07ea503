package handlers

import (
	"errors"
	"log"

	"jobtrack/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as {message, details?}. The wrapped cause of a
// server-side failure is logged and never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= fiber.StatusInternalServerError {
			log.Printf("[%v] %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), appErr)
		}
		return c.Status(appErr.Code).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	log.Printf("[%v] unhandled error on %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
}
