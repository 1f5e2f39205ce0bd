package catalogController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDomains returns all active domains. Domains are the top of the scope
// hierarchy, so there is no fallback to run here.
func GetDomains(c *fiber.Ctx) error {
	var domains []models.Domain
	if err := database.Database.Db.Where("is_active = ?", true).Order("id ASC").Find(&domains).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch domains", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domains fetched successfully.", domains)
}

// GetAllDomains returns every domain row for the admin panel
func GetAllDomains(c *fiber.Ctx) error {
	var domains []models.Domain
	if err := database.Database.Db.Order("id ASC").Find(&domains).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all domains", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domains fetched successfully.", domains)
}

// GetDomainByID returns one domain row by primary key
func GetDomainByID(c *fiber.Ctx) error {
	var domain models.Domain
	if err := database.Database.Db.First(&domain, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Domain not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domain fetched successfully.", domain)
}

// CreateDomain creates a domain row; video URL and thumbnail are required
func CreateDomain(c *fiber.Ctx) error {
	videoURL := c.FormValue("videoUrl")
	if videoURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "YouTube video URL is required", nil)
	}

	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail image is required", nil)
	}
	if !utils.ValidImageUpload(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
	}

	thumbnailURL, err := utils.SaveUploadedFile(file, utils.UploadDomainThumbnails)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", err)
	}

	domain := models.Domain{
		DomainID:     utils.FormUint(c, "domainId", 0),
		CourseID:     utils.FormUint(c, "courseId", 0),
		Domain:       c.FormValue("domain"),
		Title:        c.FormValue("title"),
		Subtitle:     c.FormValue("subtitle"),
		Price:        c.FormValue("price"),
		Description:  c.FormValue("description"),
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		IsActive:     utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&domain).Error; err != nil {
		utils.DeleteUploadedFile(thumbnailURL)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create domain", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Domain created successfully", domain)
}

// UpdateDomain updates a domain row, replacing the thumbnail when a new one
// is uploaded
func UpdateDomain(c *fiber.Ctx) error {
	db := database.Database.Db

	var domain models.Domain
	if err := db.First(&domain, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Domain not found", nil)
	}

	oldThumbnail, newThumbnail := "", ""
	if file, err := c.FormFile("thumbnail"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadDomainThumbnails)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", saveErr)
		}
		oldThumbnail, newThumbnail = domain.ThumbnailURL, path
		domain.ThumbnailURL = path
	}

	if v := c.FormValue("domain"); v != "" {
		domain.Domain = v
	}
	if v := c.FormValue("title"); v != "" {
		domain.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		domain.Subtitle = v
	}
	if v := c.FormValue("price"); v != "" {
		domain.Price = v
	}
	if v := c.FormValue("description"); v != "" {
		domain.Description = v
	}
	if v := c.FormValue("videoUrl"); v != "" {
		domain.VideoURL = v
	}
	domain.DomainID = utils.FormUint(c, "domainId", domain.DomainID)
	domain.CourseID = utils.FormUint(c, "courseId", domain.CourseID)
	domain.IsActive = utils.FormBool(c, "isActive", domain.IsActive)

	if err := db.Save(&domain).Error; err != nil {
		if newThumbnail != "" {
			utils.DeleteUploadedFile(newThumbnail)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update domain", err)
	}

	if oldThumbnail != "" {
		utils.DeleteUploadedFile(oldThumbnail)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domain updated successfully", domain)
}

// DeleteDomain removes a domain row and its thumbnail
func DeleteDomain(c *fiber.Ctx) error {
	db := database.Database.Db

	var domain models.Domain
	if err := db.First(&domain, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Domain not found", nil)
	}

	if err := db.Unscoped().Delete(&domain).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete domain", err)
	}

	utils.DeleteUploadedFile(domain.ThumbnailURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Domain deleted successfully", nil)
}
