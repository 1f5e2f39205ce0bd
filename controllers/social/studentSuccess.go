package socialController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStudentSuccess returns success stories for a scope, falling back to
// the domain set and then the landing set
func GetStudentSuccess(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.StudentSuccess](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch success stories", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Success stories fetched successfully.", items)
}

// GetAllStudentSuccess returns every success story for the admin panel
func GetAllStudentSuccess(c *fiber.Ctx) error {
	var items []models.StudentSuccess
	if err := database.Database.Db.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all success stories", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Success stories fetched successfully.", items)
}

// GetStudentSuccessByID returns one success story by primary key
func GetStudentSuccessByID(c *fiber.Ctx) error {
	var item models.StudentSuccess
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Success story not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Success story fetched successfully.", item)
}

// CreateStudentSuccess creates a success story. The review text is required
// and the rating must fall between 1 and 5.
func CreateStudentSuccess(c *fiber.Ctx) error {
	review := c.FormValue("review")
	if review == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Review text is required", nil)
	}
	rating := utils.FormInt(c, "rating", 0)
	if rating < 1 || rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5", nil)
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(file) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imagePath, err = utils.SaveUploadedFile(file, utils.UploadStudentSuccess)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store photo", err)
		}
	}

	item := models.StudentSuccess{
		DomainID:  utils.FormUint(c, "domainId", 0),
		CourseID:  utils.FormUint(c, "courseId", 0),
		Name:      c.FormValue("name"),
		Course:    c.FormValue("course"),
		Rating:    rating,
		Review:    review,
		Placement: c.FormValue("placement"),
		Duration:  c.FormValue("duration"),
		Image:     imagePath,
		IsActive:  utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		if imagePath != "" {
			utils.DeleteUploadedFile(imagePath)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create success story", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Success story created successfully", item)
}

// UpdateStudentSuccess updates a success story, replacing the photo when a
// new one is uploaded
func UpdateStudentSuccess(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.StudentSuccess
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Success story not found", nil)
	}

	if rating := utils.FormInt(c, "rating", item.Rating); rating != item.Rating {
		if rating < 1 || rating > 5 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5", nil)
		}
		item.Rating = rating
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadStudentSuccess)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store photo", saveErr)
		}
		oldImage, newImage = item.Image, path
		item.Image = path
	}

	if v := c.FormValue("name"); v != "" {
		item.Name = v
	}
	if v := c.FormValue("course"); v != "" {
		item.Course = v
	}
	if v := c.FormValue("review"); v != "" {
		item.Review = v
	}
	if v := c.FormValue("placement"); v != "" {
		item.Placement = v
	}
	if v := c.FormValue("duration"); v != "" {
		item.Duration = v
	}
	item.DomainID = utils.FormUint(c, "domainId", item.DomainID)
	item.CourseID = utils.FormUint(c, "courseId", item.CourseID)
	item.IsActive = utils.FormBool(c, "isActive", item.IsActive)

	if err := db.Save(&item).Error; err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update success story", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Success story updated successfully", item)
}

// DeleteStudentSuccess removes a success story and its photo
func DeleteStudentSuccess(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.StudentSuccess
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Success story not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete success story", err)
	}

	utils.DeleteUploadedFile(item.Image)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Success story deleted successfully", nil)
}
