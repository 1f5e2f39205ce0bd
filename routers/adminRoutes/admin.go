package adminRoutes

import (
	adminController "greenstech/controllers/admin"
	authValidator "greenstech/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Post("/signup", authValidator.Signup(), adminController.Signup)
	adminGroup.Post("/login", authValidator.Login(), adminController.Login)
}
