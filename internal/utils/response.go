package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorMessage defines the schema for error responses
type ErrorMessage struct {
	Message string `json:"message"`
}

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ValidationErrorResponse sends a 400 with the validation message
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorMessage{Message: message})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorMessage{Message: message})
}

// InternalErrorResponse logs the underlying cause and sends a 500 with a
// generic message. The cause never reaches the client.
func InternalErrorResponse(c *fiber.Ctx, message string, cause error) error {
	log.Printf("%s %s: %s: %v", c.Method(), c.OriginalURL(), message, cause)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorMessage{Message: message})
}
