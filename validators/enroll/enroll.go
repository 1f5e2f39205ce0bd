package enrollValidator

import (
	"greenstech/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Request validates the public enrollment form
func Request() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DomainID uint   `json:"domainId" validate:"required"`
			Name     string `json:"name" validate:"required,min=2"`
			Email    string `json:"email" validate:"required,email"`
			Phone    string `json:"phone" validate:"required,min=7,max=15"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "DomainID":
					errors["domainId"] = "Domain is required!"
				case "Name":
					errors["name"] = "Name must be at least 2 characters long!"
				case "Email":
					errors["email"] = "Invalid email!"
				case "Phone":
					errors["phone"] = "Invalid phone number!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
