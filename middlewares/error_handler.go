package middleware

import (
	"errors"
	"log"

	"notes-server/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps taxonomy errors to their status and error_code. Anything
// outside the taxonomy is an infrastructure failure and becomes a plain 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if status, code := apperrors.Status(err); status != 0 {
		return c.Status(status).JSON(fiber.Map{
			"message":    err.Error(),
			"error_code": code,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message":    fiberErr.Message,
			"error_code": "http_error",
		})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message":    "Internal server error",
		"error_code": "internal_error",
	})
}
