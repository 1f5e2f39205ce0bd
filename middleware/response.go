package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes field-level validation errors
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ErrorResponse logs the underlying error server-side and returns only the
// generic message to the client. Internal detail never reaches the response.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if err != nil {
		log.Printf("%s %s -> %d %s: %v", c.Method(), c.Path(), statusCode, message, err)
	}
	return JsonResponse(c, statusCode, false, message, nil)
}
