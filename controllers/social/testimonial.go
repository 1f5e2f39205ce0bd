package socialController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTestimonials returns written testimonials for a scope, falling back to
// the domain set and then the landing set
func GetTestimonials(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.Testimonial](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch testimonials", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully.", items)
}

// GetAllTestimonials returns every testimonial row for the admin panel
func GetAllTestimonials(c *fiber.Ctx) error {
	var items []models.Testimonial
	if err := database.Database.Db.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all testimonials", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched successfully.", items)
}

// GetTestimonialByID returns one testimonial by primary key
func GetTestimonialByID(c *fiber.Ctx) error {
	var item models.Testimonial
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial fetched successfully.", item)
}

// CreateTestimonial creates a testimonial; the quote is required, the photo
// is optional
func CreateTestimonial(c *fiber.Ctx) error {
	quote := c.FormValue("quote")
	if quote == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Testimonial quote is required", nil)
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(file) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imagePath, err = utils.SaveUploadedFile(file, utils.UploadTestimonials)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store photo", err)
		}
	}

	item := models.Testimonial{
		DomainID: utils.FormUint(c, "domainId", 0),
		CourseID: utils.FormUint(c, "courseId", 0),
		Name:     c.FormValue("name"),
		Batch:    c.FormValue("batch"),
		Image:    imagePath,
		Quote:    quote,
		VideoURL: c.FormValue("videoUrl"),
		IsActive: utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		if imagePath != "" {
			utils.DeleteUploadedFile(imagePath)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create testimonial", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created successfully", item)
}

// UpdateTestimonial updates a testimonial, replacing the photo when a new
// one is uploaded
func UpdateTestimonial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.Testimonial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadTestimonials)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store photo", saveErr)
		}
		oldImage, newImage = item.Image, path
		item.Image = path
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
	item.IsActive = utils.FormBool(c, "isActive", item.IsActive)

	if err := db.Save(&item).Error; err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update testimonial", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial updated successfully", item)
}

// DeleteTestimonial removes a testimonial and its photo
func DeleteTestimonial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.Testimonial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Testimonial not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete testimonial", err)
	}

	utils.DeleteUploadedFile(item.Image)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Testimonial deleted successfully", nil)
}
