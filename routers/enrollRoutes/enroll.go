package enrollRoutes

import (
	enrollController "greenstech/controllers/enroll"
	"greenstech/middleware"
	enrollValidator "greenstech/validators/enroll"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollRoutes(app *fiber.App) {
	cardGroup := app.Group("/api/enroll-cards")
	cardGroup.Get("/", enrollController.GetEnrollCards)
	cardGroup.Get("/admin/all", middleware.AdminJWT, enrollController.GetAllEnrollCards)
	cardGroup.Get("/:id", middleware.AdminJWT, enrollController.GetEnrollCardByID)
	cardGroup.Post("/", middleware.AdminJWT, enrollController.CreateEnrollCard)
	cardGroup.Put("/:id", middleware.AdminJWT, enrollController.UpdateEnrollCard)
	cardGroup.Patch("/:id/deactivate", middleware.AdminJWT, enrollController.DeactivateEnrollCard)
	cardGroup.Patch("/:id/restore", middleware.AdminJWT, enrollController.RestoreEnrollCard)
	cardGroup.Delete("/:id", middleware.AdminJWT, enrollController.DeleteEnrollCard)

	enrollmentGroup := app.Group("/api/enrollments")
	enrollmentGroup.Post("/request", enrollValidator.Request(), enrollController.CreateEnrollmentRequest)
	enrollmentGroup.Get("/admin/all", middleware.AdminJWT, enrollController.GetEnrollmentRequests)
	enrollmentGroup.Get("/:id", middleware.AdminJWT, enrollController.GetEnrollmentRequestByID)
	enrollmentGroup.Delete("/:id", middleware.AdminJWT, enrollController.DeleteEnrollmentRequest)
}
