package contentRoutes

import (
	contentController "greenstech/controllers/content"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	aboutGroup := app.Group("/api/about")
	aboutGroup.Get("/", contentController.GetAbout)
	aboutGroup.Get("/admin/all", middleware.AdminJWT, contentController.GetAllAbouts)
	aboutGroup.Get("/:id", middleware.AdminJWT, contentController.GetAboutByID)
	aboutGroup.Post("/", middleware.AdminJWT, contentController.CreateAbout)
	aboutGroup.Put("/:id", middleware.AdminJWT, contentController.UpdateAbout)
	aboutGroup.Delete("/:id", middleware.AdminJWT, contentController.DeleteAbout)

	trainerGroup := app.Group("/api/trainer-about")
	trainerGroup.Get("/", contentController.GetTrainerAbout)
	trainerGroup.Get("/admin/all", middleware.AdminJWT, contentController.GetAllTrainerAbouts)
	trainerGroup.Get("/:id", middleware.AdminJWT, contentController.GetTrainerAboutByID)
	trainerGroup.Post("/", middleware.AdminJWT, contentController.CreateTrainerAbout)
	trainerGroup.Put("/:id", middleware.AdminJWT, contentController.UpdateTrainerAbout)
	trainerGroup.Delete("/:id", middleware.AdminJWT, contentController.DeleteTrainerAbout)

	careerGroup := app.Group("/api/career-impact")
	careerGroup.Get("/", contentController.GetCareerImpact)
	careerGroup.Get("/admin/all", middleware.AdminJWT, contentController.GetAllCareerImpacts)
	careerGroup.Get("/:id", middleware.AdminJWT, contentController.GetCareerImpactByID)
	careerGroup.Post("/", middleware.AdminJWT, contentController.CreateCareerImpact)
	careerGroup.Put("/:id", middleware.AdminJWT, contentController.UpdateCareerImpact)
	careerGroup.Delete("/:id", middleware.AdminJWT, contentController.DeleteCareerImpact)

	certificateGroup := app.Group("/api/certificate")
	certificateGroup.Get("/", contentController.GetCertificate)
	certificateGroup.Get("/admin/all", middleware.AdminJWT, contentController.GetAllCertificates)
	certificateGroup.Get("/:id", middleware.AdminJWT, contentController.GetCertificateByID)
	certificateGroup.Post("/", middleware.AdminJWT, contentController.CreateCertificate)
	certificateGroup.Put("/:id", middleware.AdminJWT, contentController.UpdateCertificate)
	certificateGroup.Delete("/:id", middleware.AdminJWT, contentController.DeleteCertificate)
}
