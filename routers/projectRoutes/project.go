package projectRoutes

import (
	projectController "greenstech/controllers/project"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProjectRoutes(app *fiber.App) {
	projectGroup := app.Group("/api/projects")

	projectGroup.Get("/", projectController.GetProjects)
	projectGroup.Get("/admin/all", middleware.AdminJWT, projectController.GetAllProjects)
	projectGroup.Get("/:id", middleware.AdminJWT, projectController.GetProjectByID)
	projectGroup.Post("/", middleware.AdminJWT, projectController.CreateProject)
	projectGroup.Put("/:id", middleware.AdminJWT, projectController.UpdateProject)
	projectGroup.Delete("/:id", middleware.AdminJWT, projectController.DeleteProject)
}
