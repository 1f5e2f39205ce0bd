package main

import (
	"log"

	"greenstech/config"
	"greenstech/database"
	"greenstech/middleware"
	adminRoutes "greenstech/routers/adminRoutes"
	catalogRoutes "greenstech/routers/catalogRoutes"
	contentRoutes "greenstech/routers/contentRoutes"
	enrollRoutes "greenstech/routers/enrollRoutes"
	faqRoutes "greenstech/routers/faqRoutes"
	heroRoutes "greenstech/routers/heroRoutes"
	mailRoutes "greenstech/routers/mailRoutes"
	materialRoutes "greenstech/routers/materialRoutes"
	moduleRoutes "greenstech/routers/moduleRoutes"
	noticeRoutes "greenstech/routers/noticeRoutes"
	projectRoutes "greenstech/routers/projectRoutes"
	socialRoutes "greenstech/routers/socialRoutes"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.RegisterUploadTypes()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded assets
	app.Static("/uploads", config.AppConfig.UploadDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Greens Tech API is running", nil)
	})

	heroRoutes.SetupHeroRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	projectRoutes.SetupProjectRoutes(app)
	socialRoutes.SetupSocialRoutes(app)
	materialRoutes.SetupMaterialRoutes(app)
	enrollRoutes.SetupEnrollRoutes(app)
	faqRoutes.SetupFAQRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	mailRoutes.SetupMailRoutes(app)
	noticeRoutes.SetupNoticeRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Route not found", nil)
	})

	utils.StartCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
