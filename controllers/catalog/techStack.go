package catalogController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTechStack returns the tech stack icons for a scope, falling back to the
// domain set and then the landing set when nothing is configured
func GetTechStack(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.TechStack](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tech stack", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tech stack fetched successfully.", items)
}

// GetAllTechStack returns every tech stack row for the admin panel
func GetAllTechStack(c *fiber.Ctx) error {
	var items []models.TechStack
	if err := database.Database.Db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all tech stack", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tech stack fetched successfully.", items)
}

// GetTechStackByID returns one tech stack row by primary key
func GetTechStackByID(c *fiber.Ctx) error {
	var item models.TechStack
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tech stack item not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tech stack item fetched successfully.", item)
}

// CreateTechStack creates one icon entry
func CreateTechStack(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Technology name is required", nil)
	}

	file, err := c.FormFile("icon")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Icon image is required", nil)
	}
	if !utils.ValidImageUpload(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
	}

	iconURL, err := utils.SaveUploadedFile(file, utils.UploadTechStack)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store icon", err)
	}

	item := models.TechStack{
		DomainID:  utils.FormUint(c, "domainId", 0),
		CourseID:  utils.FormUint(c, "courseId", 0),
		Name:      name,
		IconURL:   iconURL,
		SortOrder: utils.FormInt(c, "order", 0),
		IsActive:  utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		utils.DeleteUploadedFile(iconURL)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create tech stack item", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tech stack item created successfully", item)
}

// UpdateTechStack updates one icon entry, replacing the icon file when a new
// one is uploaded
func UpdateTechStack(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.TechStack
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tech stack item not found", nil)
	}

	oldIcon, newIcon := "", ""
	if file, err := c.FormFile("icon"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadTechStack)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store icon", saveErr)
		}
		oldIcon, newIcon = item.IconURL, path
		item.IconURL = path
	}

	if v := c.FormValue("name"); v != "" {
		item.Name = v
	}
	item.DomainID = utils.FormUint(c, "domainId", item.DomainID)
	item.CourseID = utils.FormUint(c, "courseId", item.CourseID)
	item.SortOrder = utils.FormInt(c, "order", item.SortOrder)
	item.IsActive = utils.FormBool(c, "isActive", item.IsActive)

	if err := db.Save(&item).Error; err != nil {
		if newIcon != "" {
			utils.DeleteUploadedFile(newIcon)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update tech stack item", err)
	}

	if oldIcon != "" {
		utils.DeleteUploadedFile(oldIcon)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tech stack item updated successfully", item)
}

// DeleteTechStack removes one icon entry and its file
func DeleteTechStack(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.TechStack
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tech stack item not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete tech stack item", err)
	}

	utils.DeleteUploadedFile(item.IconURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tech stack item deleted successfully", nil)
}
