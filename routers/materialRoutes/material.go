package materialRoutes

import (
	materialController "greenstech/controllers/material"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMaterialRoutes(app *fiber.App) {
	materialGroup := app.Group("/api/materials")

	materialGroup.Get("/", materialController.GetStudyMaterials)
	materialGroup.Get("/admin/all", middleware.AdminJWT, materialController.GetAllStudyMaterials)
	materialGroup.Get("/:id", middleware.AdminJWT, materialController.GetStudyMaterialByID)
	materialGroup.Post("/", middleware.AdminJWT, materialController.CreateStudyMaterial)
	materialGroup.Put("/:id", middleware.AdminJWT, materialController.UpdateStudyMaterial)
	materialGroup.Delete("/:id", middleware.AdminJWT, materialController.DeleteStudyMaterial)
}
