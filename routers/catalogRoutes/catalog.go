package catalogRoutes

import (
	catalogController "greenstech/controllers/catalog"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	domainGroup := app.Group("/api/domain")
	domainGroup.Get("/", catalogController.GetDomains)
	domainGroup.Get("/admin/all", middleware.AdminJWT, catalogController.GetAllDomains)
	domainGroup.Get("/:id", middleware.AdminJWT, catalogController.GetDomainByID)
	domainGroup.Post("/", middleware.AdminJWT, catalogController.CreateDomain)
	domainGroup.Put("/:id", middleware.AdminJWT, catalogController.UpdateDomain)
	domainGroup.Delete("/:id", middleware.AdminJWT, catalogController.DeleteDomain)

	courseGroup := app.Group("/api/courses")
	courseGroup.Get("/", catalogController.GetCourses)
	courseGroup.Get("/admin/all", middleware.AdminJWT, catalogController.GetAllCourses)
	courseGroup.Get("/:id", middleware.AdminJWT, catalogController.GetCourseByID)
	courseGroup.Post("/", middleware.AdminJWT, catalogController.CreateCourse)
	courseGroup.Put("/:id", middleware.AdminJWT, catalogController.UpdateCourse)
	courseGroup.Delete("/:id", middleware.AdminJWT, catalogController.DeleteCourse)

	techGroup := app.Group("/api/tech-stack")
	techGroup.Get("/", catalogController.GetTechStack)
	techGroup.Get("/admin/all", middleware.AdminJWT, catalogController.GetAllTechStack)
	techGroup.Get("/:id", middleware.AdminJWT, catalogController.GetTechStackByID)
	techGroup.Post("/", middleware.AdminJWT, catalogController.CreateTechStack)
	techGroup.Put("/:id", middleware.AdminJWT, catalogController.UpdateTechStack)
	techGroup.Delete("/:id", middleware.AdminJWT, catalogController.DeleteTechStack)
}
