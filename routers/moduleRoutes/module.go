package moduleRoutes

import (
	moduleController "greenstech/controllers/module"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/api/modules")

	moduleGroup.Get("/", moduleController.GetModules)
	moduleGroup.Get("/admin/all", middleware.AdminJWT, moduleController.GetAllModules)
	moduleGroup.Get("/:id", middleware.AdminJWT, moduleController.GetModuleByID)
	moduleGroup.Post("/", middleware.AdminJWT, moduleController.CreateModule)
	moduleGroup.Put("/:id", middleware.AdminJWT, moduleController.UpdateModule)
	moduleGroup.Delete("/:id", middleware.AdminJWT, moduleController.DeleteModule)
}
