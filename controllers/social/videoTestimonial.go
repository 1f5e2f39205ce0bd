package socialController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetVideoTestimonials returns video testimonials for a scope, falling back
// to the domain set and then the landing set
func GetVideoTestimonials(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.VideoTestimonial](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch video testimonials", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video testimonials fetched successfully.", items)
}

// GetAllVideoTestimonials returns every video testimonial row for the admin
// panel
func GetAllVideoTestimonials(c *fiber.Ctx) error {
	var items []models.VideoTestimonial
	if err := database.Database.Db.Order("sort_order ASC, id ASC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all video testimonials", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video testimonials fetched successfully.", items)
}

// GetVideoTestimonialByID returns one video testimonial by primary key
func GetVideoTestimonialByID(c *fiber.Ctx) error {
	var item models.VideoTestimonial
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video testimonial not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video testimonial fetched successfully.", item)
}

// CreateVideoTestimonial creates a video testimonial; the video URL is
// required, the thumbnail is optional
func CreateVideoTestimonial(c *fiber.Ctx) error {
	videoURL := c.FormValue("videoUrl")
	if videoURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video URL is required", nil)
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(file) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imageURL, err = utils.SaveUploadedFile(file, utils.UploadVideoThumbnails)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", err)
		}
	}

	item := models.VideoTestimonial{
		DomainID:  utils.FormUint(c, "domainId", 0),
		CourseID:  utils.FormUint(c, "courseId", 0),
		Name:      c.FormValue("name"),
		Batch:     c.FormValue("batch"),
		Quote:     c.FormValue("quote"),
		ImageURL:  imageURL,
		VideoURL:  videoURL,
		SortOrder: utils.FormInt(c, "order", 0),
		IsActive:  utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		if imageURL != "" {
			utils.DeleteUploadedFile(imageURL)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create video testimonial", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video testimonial created successfully", item)
}

// UpdateVideoTestimonial updates a video testimonial, replacing the
// thumbnail when a new one is uploaded
func UpdateVideoTestimonial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.VideoTestimonial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video testimonial not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadVideoThumbnails)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store thumbnail", saveErr)
		}
		oldImage, newImage = item.ImageURL, path
		item.ImageURL = path
	}

	if v := c.FormValue("name"); v != "" {
		item.Name = v
	}
	if v := c.FormValue("batch"); v != "" {
		item.Batch = v
	}
	if v := c.FormValue("quote"); v != "" {
		item.Quote = v
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
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update video testimonial", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video testimonial updated successfully", item)
}

// DeleteVideoTestimonial removes a video testimonial and its thumbnail
func DeleteVideoTestimonial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.VideoTestimonial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video testimonial not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete video testimonial", err)
	}

	utils.DeleteUploadedFile(item.ImageURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video testimonial deleted successfully", nil)
}
