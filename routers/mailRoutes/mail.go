package mailRoutes

import (
	mailController "greenstech/controllers/mail"
	"greenstech/middleware"
	mailValidator "greenstech/validators/mail"

	"github.com/gofiber/fiber/v2"
)

func SetupMailRoutes(app *fiber.App) {
	mailGroup := app.Group("/api/mail")

	mailGroup.Post("/process", mailValidator.Process(), mailController.ProcessMail)
	mailGroup.Post("/admin", middleware.AdminJWT, mailController.SendBulkMail)
	mailGroup.Get("/contacts", middleware.AdminJWT, mailController.GetContacts)
	mailGroup.Delete("/contacts/:id", middleware.AdminJWT, mailController.DeleteContact)
}
