package faqRoutes

import (
	faqController "greenstech/controllers/faq"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupFAQRoutes(app *fiber.App) {
	faqGroup := app.Group("/api/faq-chat")

	faqGroup.Get("/", faqController.GetFAQChat)
	faqGroup.Get("/admin/all", middleware.AdminJWT, faqController.GetAllFAQChat)
	faqGroup.Post("/", middleware.AdminJWT, faqController.CreateFAQChat)
	faqGroup.Put("/:id", middleware.AdminJWT, faqController.UpdateFAQChat)
	faqGroup.Delete("/:id", middleware.AdminJWT, faqController.DeleteFAQChat)
}
