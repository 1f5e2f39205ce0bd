package enrollController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollCards returns the active promo cards for a scope, falling back
// to the domain set and then the landing set
func GetEnrollCards(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	cards, err := database.ResolveScopedList[models.EnrollCard](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enroll cards", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll cards fetched successfully.", cards)
}

// GetAllEnrollCards returns every card, inactive ones included, for the
// admin panel
func GetAllEnrollCards(c *fiber.Ctx) error {
	var cards []models.EnrollCard
	if err := database.Database.Db.Order("sort_order ASC, id ASC").Find(&cards).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all enroll cards", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll cards fetched successfully.", cards)
}

// GetEnrollCardByID returns one card by primary key
func GetEnrollCardByID(c *fiber.Ctx) error {
	var card models.EnrollCard
	if err := database.Database.Db.First(&card, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enroll card not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll card fetched successfully.", card)
}

// CreateEnrollCard creates a promo card with its image
func CreateEnrollCard(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Card title is required", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Card image is required", nil)
	}
	if !utils.ValidImageUpload(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
	}

	imagePath, err := utils.SaveUploadedFile(file, utils.UploadEnrollCards)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store card image", err)
	}

	card := models.EnrollCard{
		DomainID:  utils.FormUint(c, "domainId", 0),
		CourseID:  utils.FormUint(c, "courseId", 0),
		Title:     title,
		Image:     imagePath,
		SortOrder: utils.FormInt(c, "order", 0),
		IsActive:  utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&card).Error; err != nil {
		utils.DeleteUploadedFile(imagePath)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create enroll card", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enroll card created successfully", card)
}

// UpdateEnrollCard updates a card, replacing the image when a new one is
// uploaded
func UpdateEnrollCard(c *fiber.Ctx) error {
	db := database.Database.Db

	var card models.EnrollCard
	if err := db.First(&card, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enroll card not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadEnrollCards)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store card image", saveErr)
		}
		oldImage, newImage = card.Image, path
		card.Image = path
	}

	if v := c.FormValue("title"); v != "" {
		card.Title = v
	}
	card.DomainID = utils.FormUint(c, "domainId", card.DomainID)
	card.CourseID = utils.FormUint(c, "courseId", card.CourseID)
	card.SortOrder = utils.FormInt(c, "order", card.SortOrder)
	card.IsActive = utils.FormBool(c, "isActive", card.IsActive)

	if err := db.Save(&card).Error; err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update enroll card", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll card updated successfully", card)
}

// DeactivateEnrollCard hides a card from the public list without touching
// the row or its image
func DeactivateEnrollCard(c *fiber.Ctx) error {
	db := database.Database.Db

	var card models.EnrollCard
	if err := db.First(&card, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enroll card not found", nil)
	}

	card.IsActive = false
	if err := db.Save(&card).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to deactivate enroll card", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll card deactivated successfully", card)
}

// RestoreEnrollCard puts a deactivated card back into the public list
func RestoreEnrollCard(c *fiber.Ctx) error {
	db := database.Database.Db

	var card models.EnrollCard
	if err := db.First(&card, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enroll card not found", nil)
	}

	card.IsActive = true
	if err := db.Save(&card).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to restore enroll card", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll card restored successfully", card)
}

// DeleteEnrollCard removes a card and its image permanently
func DeleteEnrollCard(c *fiber.Ctx) error {
	db := database.Database.Db

	var card models.EnrollCard
	if err := db.First(&card, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enroll card not found", nil)
	}

	if err := db.Unscoped().Delete(&card).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete enroll card", err)
	}

	utils.DeleteUploadedFile(card.Image)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enroll card deleted successfully", nil)
}
