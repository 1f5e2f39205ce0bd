package catalogController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCourses returns the active course cards for a domain page. When a
// domain has no cards of its own the landing set (domainId 0) is served
// instead, so a brand new domain page never renders an empty strip.
func GetCourses(c *fiber.Ctx) error {
	db := database.Database.Db
	domainID, _ := utils.QueryScope(c)

	var courses []models.Course
	if err := db.Where("domain_id = ? AND is_active = ?", domainID, true).
		Order("id ASC").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses", err)
	}

	if len(courses) == 0 && domainID != 0 {
		if err := db.Where("domain_id = ? AND is_active = ?", 0, true).
			Order("id ASC").Find(&courses).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetAllCourses returns every course row for the admin panel
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

// GetCourseByID returns one course row by primary key
func GetCourseByID(c *fiber.Ctx) error {
	var course models.Course
	if err := database.Database.Db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// CreateCourse creates a course card with its image
func CreateCourse(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course image is required", nil)
	}
	if !utils.ValidImageUpload(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
	}

	imagePath, err := utils.SaveUploadedFile(file, utils.UploadCourses)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store course image", err)
	}

	course := models.Course{
		DomainID:    utils.FormUint(c, "domainId", 0),
		CourseID:    utils.FormUint(c, "courseId", 0),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Image:       imagePath,
		Price:       c.FormValue("price"),
		Duration:    c.FormValue("duration"),
		IsActive:    utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		utils.DeleteUploadedFile(imagePath)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

// UpdateCourse updates a course card, replacing the image when a new one is
// uploaded
func UpdateCourse(c *fiber.Ctx) error {
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadCourses)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store course image", saveErr)
		}
		oldImage, newImage = course.Image, path
		course.Image = path
	}

	if v := c.FormValue("title"); v != "" {
		course.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		course.Description = v
	}
	if v := c.FormValue("price"); v != "" {
		course.Price = v
	}
	if v := c.FormValue("duration"); v != "" {
		course.Duration = v
	}
	course.DomainID = utils.FormUint(c, "domainId", course.DomainID)
	course.CourseID = utils.FormUint(c, "courseId", course.CourseID)
	course.IsActive = utils.FormBool(c, "isActive", course.IsActive)

	if err := db.Save(&course).Error; err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", course)
}

// DeleteCourse removes a course card and its image
func DeleteCourse(c *fiber.Ctx) error {
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	if err := db.Unscoped().Delete(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course", err)
	}

	utils.DeleteUploadedFile(course.Image)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
