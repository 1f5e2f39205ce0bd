package noticeController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"

	"github.com/gofiber/fiber/v2"
)

type noticeInput struct {
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
}

// GetNotices returns the active announcement lines, newest first
func GetNotices(c *fiber.Ctx) error {
	var notices []models.Notice
	if err := database.Database.Db.Where("is_active = ?", true).
		Order("created_at DESC").Find(&notices).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch notices", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully.", notices)
}

// GetAllNotices returns every notice for the admin panel
func GetAllNotices(c *fiber.Ctx) error {
	var notices []models.Notice
	if err := database.Database.Db.Order("created_at DESC").Find(&notices).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all notices", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully.", notices)
}

// CreateNotice creates one announcement line
func CreateNotice(c *fiber.Ctx) error {
	var input noticeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body", nil)
	}
	if input.Content == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Notice content is required", nil)
	}

	notice := models.Notice{
		Content:  input.Content,
		IsActive: input.IsActive == nil || *input.IsActive,
	}

	if err := database.Database.Db.Create(&notice).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create notice", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notice created successfully", notice)
}

// UpdateNotice updates one announcement line
func UpdateNotice(c *fiber.Ctx) error {
	db := database.Database.Db

	var notice models.Notice
	if err := db.First(&notice, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found", nil)
	}

	var input noticeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body", nil)
	}

	if input.Content != "" {
		notice.Content = input.Content
	}
	if input.IsActive != nil {
		notice.IsActive = *input.IsActive
	}

	if err := db.Save(&notice).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update notice", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice updated successfully", notice)
}

// DeleteNotice removes one announcement line
func DeleteNotice(c *fiber.Ctx) error {
	db := database.Database.Db

	var notice models.Notice
	if err := db.First(&notice, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found", nil)
	}

	if err := db.Unscoped().Delete(&notice).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete notice", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice deleted successfully", nil)
}
