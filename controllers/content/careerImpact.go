package contentController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCareerImpact returns the career impact section for the requested scope
func GetCareerImpact(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	impact, err := database.ResolveScoped[models.CareerImpact](database.Database.Db, domainID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career impact not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career impact fetched successfully.", impact)
}

// GetAllCareerImpacts returns every career impact row for the admin panel
func GetAllCareerImpacts(c *fiber.Ctx) error {
	var impacts []models.CareerImpact
	if err := database.Database.Db.Order("id ASC").Find(&impacts).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all career impacts", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career impacts fetched successfully.", impacts)
}

// GetCareerImpactByID returns one career impact row by primary key
func GetCareerImpactByID(c *fiber.Ctx) error {
	var impact models.CareerImpact
	if err := database.Database.Db.First(&impact, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career impact not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career impact fetched successfully.", impact)
}

// CreateCareerImpact creates a career impact row. No asset on this resource.
func CreateCareerImpact(c *fiber.Ctx) error {
	impact := models.CareerImpact{
		DomainID:         utils.FormUint(c, "domainId", 0),
		CourseID:         utils.FormUint(c, "courseId", 0),
		MainTitle:        c.FormValue("mainTitle"),
		MainDescription:  c.FormValue("mainDescription"),
		CtaText:          c.FormValue("ctaText"),
		CtaLink:          c.FormValue("ctaLink"),
		Card1Title:       c.FormValue("card1Title"),
		Card1Description: c.FormValue("card1Description"),
		Card2Title:       c.FormValue("card2Title"),
		Card2Description: c.FormValue("card2Description"),
		IsActive:         utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&impact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create career impact", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Career impact created successfully", impact)
}

// UpdateCareerImpact updates a career impact row in place
func UpdateCareerImpact(c *fiber.Ctx) error {
	db := database.Database.Db

	var impact models.CareerImpact
	if err := db.First(&impact, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career impact not found", nil)
	}

	if v := c.FormValue("mainTitle"); v != "" {
		impact.MainTitle = v
	}
	if v := c.FormValue("mainDescription"); v != "" {
		impact.MainDescription = v
	}
	if v := c.FormValue("ctaText"); v != "" {
		impact.CtaText = v
	}
	if v := c.FormValue("ctaLink"); v != "" {
		impact.CtaLink = v
	}
	if v := c.FormValue("card1Title"); v != "" {
		impact.Card1Title = v
	}
	if v := c.FormValue("card1Description"); v != "" {
		impact.Card1Description = v
	}
	if v := c.FormValue("card2Title"); v != "" {
		impact.Card2Title = v
	}
	if v := c.FormValue("card2Description"); v != "" {
		impact.Card2Description = v
	}
	impact.DomainID = utils.FormUint(c, "domainId", impact.DomainID)
	impact.CourseID = utils.FormUint(c, "courseId", impact.CourseID)
	impact.IsActive = utils.FormBool(c, "isActive", impact.IsActive)

	if err := db.Save(&impact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update career impact", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career impact updated successfully", impact)
}

// DeleteCareerImpact removes a career impact row
func DeleteCareerImpact(c *fiber.Ctx) error {
	db := database.Database.Db

	var impact models.CareerImpact
	if err := db.First(&impact, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Career impact not found", nil)
	}

	if err := db.Unscoped().Delete(&impact).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete career impact", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career impact deleted successfully", nil)
}
