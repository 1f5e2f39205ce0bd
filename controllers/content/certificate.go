package contentController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCertificate returns the certificate section for the requested scope
func GetCertificate(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	cert, err := database.ResolveScoped[models.Certificate](database.Database.Db, domainID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate data not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully.", cert)
}

// GetAllCertificates returns every certificate row for the admin panel
func GetAllCertificates(c *fiber.Ctx) error {
	var certs []models.Certificate
	if err := database.Database.Db.Order("id ASC").Find(&certs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all certificates", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", certs)
}

// GetCertificateByID returns one certificate row by primary key
func GetCertificateByID(c *fiber.Ctx) error {
	var cert models.Certificate
	if err := database.Database.Db.First(&cert, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully.", cert)
}

// CreateCertificate creates a certificate row; the showcase image is required
func CreateCertificate(c *fiber.Ctx) error {
	file, err := c.FormFile("certificateImage")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate image required", nil)
	}
	if !utils.ValidImageUpload(file) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
	}

	imagePath, err := utils.SaveUploadedFile(file, utils.UploadCertificates)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store certificate image", err)
	}

	var steps []models.CertificateStep
	if raw := c.FormValue("steps"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &steps); err != nil {
			utils.DeleteUploadedFile(imagePath)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid steps payload", nil)
		}
	}

	cert := models.Certificate{
		DomainID:         utils.FormUint(c, "domainId", 0),
		CourseID:         utils.FormUint(c, "courseId", 0),
		SectionTitle:     c.FormValue("sectionTitle"),
		Steps:            steps,
		CertificateImage: imagePath,
		IsActive:         utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&cert).Error; err != nil {
		utils.DeleteUploadedFile(imagePath)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create certificate", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate created successfully", cert)
}

// UpdateCertificate updates a certificate row, replacing the image when a new
// one is uploaded
func UpdateCertificate(c *fiber.Ctx) error {
	db := database.Database.Db

	var cert models.Certificate
	if err := db.First(&cert, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("certificateImage"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadCertificates)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store certificate image", saveErr)
		}
		oldImage, newImage = cert.CertificateImage, path
		cert.CertificateImage = path
	}

	if v := c.FormValue("sectionTitle"); v != "" {
		cert.SectionTitle = v
	}
	cert.DomainID = utils.FormUint(c, "domainId", cert.DomainID)
	cert.CourseID = utils.FormUint(c, "courseId", cert.CourseID)
	cert.IsActive = utils.FormBool(c, "isActive", cert.IsActive)

	if raw := c.FormValue("steps"); raw != "" {
		var steps []models.CertificateStep
		if err := json.Unmarshal([]byte(raw), &steps); err != nil {
			utils.DeleteUploadedFile(newImage)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid steps payload", nil)
		}
		cert.Steps = steps
	}

	if err := db.Save(&cert).Error; err != nil {
		utils.DeleteUploadedFile(newImage)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update certificate", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate updated successfully", cert)
}

// DeleteCertificate removes a certificate row and its image
func DeleteCertificate(c *fiber.Ctx) error {
	db := database.Database.Db

	var cert models.Certificate
	if err := db.First(&cert, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found", nil)
	}

	if err := db.Unscoped().Delete(&cert).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete certificate", err)
	}

	utils.DeleteUploadedFile(cert.CertificateImage)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate deleted successfully", nil)
}
