package heroRoutes

import (
	heroController "greenstech/controllers/hero"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupHeroRoutes(app *fiber.App) {
	heroGroup := app.Group("/api/hero")

	heroGroup.Get("/", heroController.GetHero)
	heroGroup.Get("/admin/all", middleware.AdminJWT, heroController.GetAllHeroes)
	heroGroup.Get("/:id", middleware.AdminJWT, heroController.GetHeroByID)
	heroGroup.Post("/", middleware.AdminJWT, heroController.CreateHero)
	heroGroup.Put("/:id", middleware.AdminJWT, heroController.UpdateHero)
	heroGroup.Delete("/:id", middleware.AdminJWT, heroController.DeleteHero)
}
