package noticeRoutes

import (
	noticeController "greenstech/controllers/notice"
	"greenstech/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNoticeRoutes(app *fiber.App) {
	noticeGroup := app.Group("/api/notices")

	noticeGroup.Get("/", noticeController.GetNotices)
	noticeGroup.Get("/admin/all", middleware.AdminJWT, noticeController.GetAllNotices)
	noticeGroup.Post("/", middleware.AdminJWT, noticeController.CreateNotice)
	noticeGroup.Put("/:id", middleware.AdminJWT, noticeController.UpdateNotice)
	noticeGroup.Delete("/:id", middleware.AdminJWT, noticeController.DeleteNotice)
}
