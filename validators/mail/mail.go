package mailValidator

import (
	"greenstech/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Process validates the public mail entry point. The endpoint takes
// multipart form data, so fields are read from the form rather than a JSON
// body.
func Process() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		mode := c.FormValue("mode")
		if mode == "" {
			errors["mode"] = "Mail mode is required!"
		}

		switch mode {
		case "CLIENT_GENERAL", "CLIENT_COURSE":
			if err := validate.Var(c.FormValue("email"), "required,email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		case "ADMIN_BULK":
			if c.FormValue("subject") == "" {
				errors["subject"] = "Subject is required!"
			}
			if c.FormValue("body") == "" {
				errors["body"] = "Body is required!"
			}
			if c.FormValue("targetType") == "" {
				errors["targetType"] = "Target type is required!"
			}
		default:
			if mode != "" {
				errors["mode"] = "Invalid mail mode!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
