package contentController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTrainerAbout returns the trainer section for the requested scope
func GetTrainerAbout(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	trainer, err := database.ResolveScoped[models.TrainerAbout](database.Database.Db, domainID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No trainer info found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer info fetched successfully.", trainer)
}

// GetAllTrainerAbouts returns every trainer row for the admin panel
func GetAllTrainerAbouts(c *fiber.Ctx) error {
	var trainers []models.TrainerAbout
	if err := database.Database.Db.Order("id ASC").Find(&trainers).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all trainer sections", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer sections fetched successfully.", trainers)
}

// GetTrainerAboutByID returns one trainer row by primary key
func GetTrainerAboutByID(c *fiber.Ctx) error {
	var trainer models.TrainerAbout
	if err := database.Database.Db.First(&trainer, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer About section not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer info fetched successfully.", trainer)
}

// CreateTrainerAbout creates a trainer row; mainImage upload is optional
func CreateTrainerAbout(c *fiber.Ctx) error {
	var imagePath string
	if file, err := c.FormFile("mainImage"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadTrainerAbout)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store trainer image", saveErr)
		}
		imagePath = path
	}

	var socialLinks []models.SocialLink
	if raw := c.FormValue("socialLinks"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &socialLinks); err != nil {
			utils.DeleteUploadedFile(imagePath)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid socialLinks payload", nil)
		}
	}

	trainer := models.TrainerAbout{
		DomainID:     utils.FormUint(c, "domainId", 0),
		CourseID:     utils.FormUint(c, "courseId", 0),
		Label:        c.FormValue("label"),
		Heading:      c.FormValue("heading"),
		Description1: c.FormValue("description1"),
		Description2: c.FormValue("description2"),
		MainImage:    imagePath,
		SocialLinks:  socialLinks,
		IsActive:     utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&trainer).Error; err != nil {
		utils.DeleteUploadedFile(imagePath)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create trainer section", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainer section created successfully", trainer)
}

// UpdateTrainerAbout updates a trainer row, replacing the image when a new
// one is uploaded
func UpdateTrainerAbout(c *fiber.Ctx) error {
	db := database.Database.Db

	var trainer models.TrainerAbout
	if err := db.First(&trainer, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer About section not found", nil)
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("mainImage"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadTrainerAbout)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store trainer image", saveErr)
		}
		oldImage, newImage = trainer.MainImage, path
		trainer.MainImage = path
	}

	if v := c.FormValue("label"); v != "" {
		trainer.Label = v
	}
	if v := c.FormValue("heading"); v != "" {
		trainer.Heading = v
	}
	if v := c.FormValue("description1"); v != "" {
		trainer.Description1 = v
	}
	if v := c.FormValue("description2"); v != "" {
		trainer.Description2 = v
	}
	trainer.DomainID = utils.FormUint(c, "domainId", trainer.DomainID)
	trainer.CourseID = utils.FormUint(c, "courseId", trainer.CourseID)
	trainer.IsActive = utils.FormBool(c, "isActive", trainer.IsActive)

	if raw := c.FormValue("socialLinks"); raw != "" {
		var socialLinks []models.SocialLink
		if err := json.Unmarshal([]byte(raw), &socialLinks); err != nil {
			utils.DeleteUploadedFile(newImage)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid socialLinks payload", nil)
		}
		trainer.SocialLinks = socialLinks
	}

	if err := db.Save(&trainer).Error; err != nil {
		utils.DeleteUploadedFile(newImage)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update trainer section", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer section updated successfully", trainer)
}

// DeleteTrainerAbout removes a trainer row and its image
func DeleteTrainerAbout(c *fiber.Ctx) error {
	db := database.Database.Db

	var trainer models.TrainerAbout
	if err := db.First(&trainer, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer About section not found", nil)
	}

	if err := db.Unscoped().Delete(&trainer).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete trainer section", err)
	}

	utils.DeleteUploadedFile(trainer.MainImage)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer section deleted successfully", nil)
}
