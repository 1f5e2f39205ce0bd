package enrollController

import (
	"errors"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type enrollmentInput struct {
	DomainID uint   `json:"domainId"`
	CourseID uint   `json:"courseId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateEnrollmentRequest captures a lead from the public enrollment form.
// The domain must exist; the course title is resolved from the catalog when
// a courseId is given. The lead's email is also upserted into the mail
// contact list so later campaigns can reach it.
func CreateEnrollmentRequest(c *fiber.Ctx) error {
	db := database.Database.Db

	var input enrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body", nil)
	}

	var domain models.Domain
	if err := db.Where("domain_id = ?", input.DomainID).First(&domain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Domain not found", nil)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to verify domain", err)
	}

	courseTitle := ""
	if input.CourseID != 0 {
		var course models.Course
		if err := db.First(&course, input.CourseID).Error; err == nil {
			courseTitle = course.Title
		}
	}

	request := models.EnrollmentRequest{
		DomainID: input.DomainID,
		Domain:   domain.Domain,
		CourseID: input.CourseID,
		Course:   courseTitle,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Status:   "pending",
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		contact := models.Contact{
			Email:       input.Email,
			Name:        input.Name,
			Phone:       input.Phone,
			ContactType: models.ContactTypeCourseEnquiry,
			DomainID:    input.DomainID,
			CourseID:    input.CourseID,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "contact_type", "domain_id", "updated_at"}),
		}).Create(&contact).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit enrollment request", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment request submitted successfully", request)
}

// GetEnrollmentRequests returns all captured leads, newest first
func GetEnrollmentRequests(c *fiber.Ctx) error {
	var requests []models.EnrollmentRequest
	if err := database.Database.Db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollment requests", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment requests fetched successfully.", requests)
}

// GetEnrollmentRequestByID returns one lead by primary key
func GetEnrollmentRequestByID(c *fiber.Ctx) error {
	var request models.EnrollmentRequest
	if err := database.Database.Db.First(&request, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment request not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment request fetched successfully.", request)
}

// DeleteEnrollmentRequest removes a lead
func DeleteEnrollmentRequest(c *fiber.Ctx) error {
	db := database.Database.Db

	var request models.EnrollmentRequest
	if err := db.First(&request, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment request not found", nil)
	}

	if err := db.Unscoped().Delete(&request).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete enrollment request", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment request deleted successfully", nil)
}
