package socialController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetYouTubeShorts returns the featured shorts for a scope, falling back to
// the domain set and then the landing set
func GetYouTubeShorts(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.YouTubeShort](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch shorts", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shorts fetched successfully.", items)
}

// GetAllYouTubeShorts returns every short for the admin panel
func GetAllYouTubeShorts(c *fiber.Ctx) error {
	var items []models.YouTubeShort
	if err := database.Database.Db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all shorts", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shorts fetched successfully.", items)
}

// GetYouTubeShortByID returns one short by primary key
func GetYouTubeShortByID(c *fiber.Ctx) error {
	var item models.YouTubeShort
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Short not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Short fetched successfully.", item)
}

// CreateYouTubeShort creates a short; the video URL is required, the
// thumbnail is optional
func CreateYouTubeShort(c *fiber.Ctx) error {
	videoURL := c.FormValue("videoUrl")
	if videoURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL is required", nil)
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(file) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imageURL, err = utils.SaveUploadedFile(file, utils.UploadShortsThumbnails)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", err)
		}
	}

	item := models.YouTubeShort{
		DomainID:  utils.FormUint(c, "domainId", 0),
		CourseID:  utils.FormUint(c, "courseId", 0),
		Title:     c.FormValue("title"),
		VideoURL:  videoURL,
		ImageURL:  imageURL,
		SortOrder: utils.FormInt(c, "order", 0),
		IsActive:  utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		if imageURL != "" {
			utils.DeleteUploadedFile(imageURL)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create short", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Short created successfully", item)
}

// UpdateYouTubeShort updates a short, replacing the thumbnail when a new
// one is uploaded
func UpdateYouTubeShort(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.YouTubeShort
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Short not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadShortsThumbnails)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", saveErr)
		}
		oldImage, newImage = item.ImageURL, path
		item.ImageURL = path
	}

	if v := c.FormValue("title"); v != "" {
		item.Title = v
	}
	if v := c.FormValue("videoUrl"); v != "" {
		item.VideoURL = v
	}
	item.DomainID = utils.FormUint(c, "domainId", item.DomainID)
	item.CourseID = utils.FormUint(c, "courseId", item.CourseID)
	item.SortOrder = utils.FormInt(c, "order", item.SortOrder)
	item.IsActive = utils.FormBool(c, "isActive", item.IsActive)

	if err := db.Save(&item).Error; err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update short", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Short updated successfully", item)
}

// DeleteYouTubeShort removes a short and its thumbnail
func DeleteYouTubeShort(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.YouTubeShort
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Short not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete short", err)
	}

	utils.DeleteUploadedFile(item.ImageURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Short deleted successfully", nil)
}
