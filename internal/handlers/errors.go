package handlers

import (
	"errors"
	"log"

	"todo/internal/services"
	"todo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service errors onto HTTP responses. Unexpected errors are
// logged and reported with a generic message.
func writeError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return errorJSON(c, fiber.StatusBadRequest, verr.Reason)
	case errors.Is(err, services.ErrDuplicateEmail):
		return errorJSON(c, fiber.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "Item not found")
	default:
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
		return errorJSON(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// parseBody decodes the JSON body into out and validates it.
func parseBody(c *fiber.Ctx, v *validation.Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return verr
		}
		log.Printf("Error parsing request body for %s %s: %v", c.Method(), c.Path(), err)
		return validation.Errorf("body", "Invalid request body")
	}
	return v.Struct(out)
}

// ErrorHandler renders errors that escape handlers (unknown routes, panics)
// in the same {"error": ...} shape as handled ones.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("Unhandled error for %s %s: %v", c.Method(), c.Path(), err)
	}
	return errorJSON(c, code, message)
}
