package mailController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mail processing modes
const (
	ModeClientGeneral = "CLIENT_GENERAL"
	ModeClientCourse  = "CLIENT_COURSE"
	ModeAdminBulk     = "ADMIN_BULK"
)

// Bulk mail targeting
const (
	TargetGeneral        = "GENERAL"
	TargetDomainSpecific = "DOMAIN_SPECIFIC"
	TargetCourseSpecific = "COURSE_SPECIFIC"
	TargetAllCourses     = "ALL_COURSES"
)

// ProcessMail is the single public mail entry point. Subscribe modes upsert
// the sender into the contact list; the bulk mode fans a campaign out to a
// contact segment.
func ProcessMail(c *fiber.Ctx) error {
	switch c.FormValue("mode") {
	case ModeClientGeneral:
		return subscribeContact(c, models.ContactTypeGeneral)
	case ModeClientCourse:
		return subscribeContact(c, models.ContactTypeCourseEnquiry)
	case ModeAdminBulk:
		return SendBulkMail(c)
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid mail mode", nil)
	}
}

// subscribeContact records an email address in the contact list. Repeat
// submissions for the same (email, course) pair refresh the row instead of
// failing, so subscribe forms can be retried freely.
func subscribeContact(c *fiber.Ctx, contactType string) error {
	email := c.FormValue("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required", nil)
	}

	contact := models.Contact{
		Email:       email,
		Name:        c.FormValue("name"),
		Phone:       c.FormValue("phone"),
		ContactType: contactType,
		DomainID:    utils.FormUint(c, "domainId", 0),
		CourseID:    utils.FormUint(c, "courseId", 0),
	}

	err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "contact_type", "domain_id", "updated_at"}),
	}).Create(&contact).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save contact", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscribed successfully", nil)
}

// SendBulkMail sends one campaign message to a targeted contact segment.
// All recipients ride on the SMTP envelope so none of them see each other's
// address. An uploaded attachment lives only for the duration of the send.
func SendBulkMail(c *fiber.Ctx) error {
	db := database.Database.Db

	subject := c.FormValue("subject")
	body := c.FormValue("body")
	if subject == "" || body == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Subject and body are required", nil)
	}

	targetType := c.FormValue("targetType")
	q, ok := contactSegment(db, targetType, utils.FormUint(c, "domainId", 0), utils.FormUint(c, "courseId", 0))
	if !ok {
		switch targetType {
		case TargetDomainSpecific:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "domainId is required for domain targeting", nil)
		case TargetCourseSpecific:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "domainId and courseId are required for course targeting", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid target type", nil)
		}
	}

	var recipients []string
	if err := q.Distinct().Pluck("email", &recipients).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load recipients", err)
	}
	if len(recipients) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No contacts match the selected target", nil)
	}

	attachmentPath := ""
	if file, err := c.FormFile("attachment"); err == nil {
		attachmentPath, err = utils.SaveUploadedFile(file, utils.UploadMailAttachments)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store attachment", err)
		}
	}

	sendErr := utils.SendBulkEmail(recipients, subject, body, attachmentPath)
	if attachmentPath != "" {
		utils.DeleteUploadedFile(attachmentPath)
	}
	if sendErr != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send mail", sendErr)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mail sent successfully", fiber.Map{
		"recipients": len(recipients),
	})
}

// contactSegment narrows the contact table to a campaign's target segment.
// Course campaigns are scoped to one domain+course pair; ALL_COURSES reaches
// every contact attached to any course, whatever its contact type. The second
// return is false when the target type is unknown or a required scope id is
// missing.
func contactSegment(db *gorm.DB, targetType string, domainID, courseID uint) (*gorm.DB, bool) {
	q := db.Model(&models.Contact{})
	switch targetType {
	case TargetGeneral:
		return q.Where("contact_type = ?", models.ContactTypeGeneral), true
	case TargetDomainSpecific:
		if domainID == 0 {
			return nil, false
		}
		return q.Where("domain_id = ?", domainID), true
	case TargetCourseSpecific:
		if domainID == 0 || courseID == 0 {
			return nil, false
		}
		return q.Where("domain_id = ? AND course_id = ?", domainID, courseID), true
	case TargetAllCourses:
		return q.Where("course_id <> 0"), true
	}
	return nil, false
}

// GetContacts returns the contact list, newest first
func GetContacts(c *fiber.Ctx) error {
	var contacts []models.Contact
	if err := database.Database.Db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contacts", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contacts fetched successfully.", contacts)
}

// DeleteContact removes one contact
func DeleteContact(c *fiber.Ctx) error {
	db := database.Database.Db

	var contact models.Contact
	if err := db.First(&contact, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact not found", nil)
	}

	if err := db.Unscoped().Delete(&contact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact deleted successfully", nil)
}
