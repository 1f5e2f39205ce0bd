package socialRoutes

import (
	socialController "greenstech/controllers/social"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSocialRoutes(app *fiber.App) {
	testimonialGroup := app.Group("/api/testimonials")
	testimonialGroup.Get("/", socialController.GetTestimonials)
	testimonialGroup.Get("/admin/all", middleware.AdminJWT, socialController.GetAllTestimonials)
	testimonialGroup.Get("/:id", middleware.AdminJWT, socialController.GetTestimonialByID)
	testimonialGroup.Post("/", middleware.AdminJWT, socialController.CreateTestimonial)
	testimonialGroup.Put("/:id", middleware.AdminJWT, socialController.UpdateTestimonial)
	testimonialGroup.Delete("/:id", middleware.AdminJWT, socialController.DeleteTestimonial)

	videoGroup := app.Group("/api/videos")
	videoGroup.Get("/", socialController.GetVideoTestimonials)
	videoGroup.Get("/admin/all", middleware.AdminJWT, socialController.GetAllVideoTestimonials)
	videoGroup.Get("/:id", middleware.AdminJWT, socialController.GetVideoTestimonialByID)
	videoGroup.Post("/", middleware.AdminJWT, socialController.CreateVideoTestimonial)
	videoGroup.Put("/:id", middleware.AdminJWT, socialController.UpdateVideoTestimonial)
	videoGroup.Delete("/:id", middleware.AdminJWT, socialController.DeleteVideoTestimonial)

	shortGroup := app.Group("/api/youtube-short")
	shortGroup.Get("/", socialController.GetYouTubeShorts)
	shortGroup.Get("/admin/all", middleware.AdminJWT, socialController.GetAllYouTubeShorts)
	shortGroup.Get("/:id", middleware.AdminJWT, socialController.GetYouTubeShortByID)
	shortGroup.Post("/", middleware.AdminJWT, socialController.CreateYouTubeShort)
	shortGroup.Put("/:id", middleware.AdminJWT, socialController.UpdateYouTubeShort)
	shortGroup.Delete("/:id", middleware.AdminJWT, socialController.DeleteYouTubeShort)

	successGroup := app.Group("/api/student-success")
	successGroup.Get("/", socialController.GetStudentSuccess)
	successGroup.Get("/admin/all", middleware.AdminJWT, socialController.GetAllStudentSuccess)
	successGroup.Get("/:id", middleware.AdminJWT, socialController.GetStudentSuccessByID)
	successGroup.Post("/", middleware.AdminJWT, socialController.CreateStudentSuccess)
	successGroup.Put("/:id", middleware.AdminJWT, socialController.UpdateStudentSuccess)
	successGroup.Delete("/:id", middleware.AdminJWT, socialController.DeleteStudentSuccess)
}
