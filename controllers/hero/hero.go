package heroController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetHero returns the hero section for the requested scope, falling back from
// course to domain to landing level.
func GetHero(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	hero, err := database.ResolveScoped[models.Hero](database.Database.Db, domainID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Hero data not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero fetched successfully.", hero)
}

// GetAllHeroes returns every hero row for the admin panel, newest first
func GetAllHeroes(c *fiber.Ctx) error {
	var heroes []models.Hero
	if err := database.Database.Db.Order("created_at DESC").Find(&heroes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all heroes", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Heroes fetched successfully.", heroes)
}

// GetHeroByID returns one hero row by primary key
func GetHeroByID(c *fiber.Ctx) error {
	var hero models.Hero
	if err := database.Database.Db.First(&hero, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Hero not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero fetched successfully.", hero)
}

// CreateHero creates a hero row from a multipart form with one or more images
func CreateHero(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["images"]) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one hero image is required", nil)
	}

	var imagePaths []string
	for _, file := range form.File["images"] {
		if !utils.ValidImageUpload(file) {
			deleteHeroFiles(imagePaths)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		path, err := utils.SaveUploadedFile(file, utils.UploadHeroes)
		if err != nil {
			deleteHeroFiles(imagePaths)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store hero image", err)
		}
		imagePaths = append(imagePaths, path)
	}

	var runningTexts []models.RunningText
	if raw := c.FormValue("runningTexts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &runningTexts); err != nil {
			deleteHeroFiles(imagePaths)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid runningTexts payload", nil)
		}
	}

	hero := models.Hero{
		DomainID:     utils.FormUint(c, "domainId", 0),
		CourseID:     utils.FormUint(c, "courseId", 0),
		Title:        c.FormValue("title"),
		Subtitle:     c.FormValue("subtitle"),
		Description:  c.FormValue("description"),
		Images:       imagePaths,
		RunningTexts: runningTexts,
		IsActive:     utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&hero).Error; err != nil {
		deleteHeroFiles(imagePaths)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create hero", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Hero created successfully", hero)
}

// UpdateHero updates a hero row. The client sends the kept image paths in
// existingImages; images missing from that list are removed from disk after
// the row is saved, and new uploads are appended.
func UpdateHero(c *fiber.Ctx) error {
	db := database.Database.Db

	var hero models.Hero
	if err := db.First(&hero, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Hero not found", nil)
	}

	// Kept images; an absent field means the client removed all previous ones
	var keptImages []string
	if raw := c.FormValue("existingImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &keptImages); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid existingImages payload", nil)
		}
	}

	keep := make(map[string]bool, len(keptImages))
	for _, img := range keptImages {
		keep[img] = true
	}
	var removed []string
	for _, img := range hero.Images {
		if !keep[img] {
			removed = append(removed, img)
		}
	}

	var newPaths []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			path, err := utils.SaveUploadedFile(file, utils.UploadHeroes)
			if err != nil {
				deleteHeroFiles(newPaths)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store hero image", err)
			}
			newPaths = append(newPaths, path)
		}
	}

	if v := c.FormValue("title"); v != "" {
		hero.Title = v
	}
	if v := c.FormValue("subtitle"); v != "" {
		hero.Subtitle = v
	}
	if v := c.FormValue("description"); v != "" {
		hero.Description = v
	}
	hero.DomainID = utils.FormUint(c, "domainId", hero.DomainID)
	hero.CourseID = utils.FormUint(c, "courseId", hero.CourseID)
	hero.IsActive = utils.FormBool(c, "isActive", hero.IsActive)
	hero.Images = append(keptImages, newPaths...)

	if raw := c.FormValue("runningTexts"); raw != "" {
		var runningTexts []models.RunningText
		if err := json.Unmarshal([]byte(raw), &runningTexts); err != nil {
			deleteHeroFiles(newPaths)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid runningTexts payload", nil)
		}
		hero.RunningTexts = runningTexts
	}

	if err := db.Save(&hero).Error; err != nil {
		deleteHeroFiles(newPaths)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update hero", err)
	}

	// Old files go only after the row is safely updated
	deleteHeroFiles(removed)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero updated successfully", hero)
}

// DeleteHero removes a hero row and its image files
func DeleteHero(c *fiber.Ctx) error {
	db := database.Database.Db

	var hero models.Hero
	if err := db.First(&hero, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Hero not found", nil)
	}

	if err := db.Unscoped().Delete(&hero).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete hero", err)
	}

	deleteHeroFiles(hero.Images)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Hero deleted successfully", nil)
}

func deleteHeroFiles(paths []string) {
	for _, p := range paths {
		utils.DeleteUploadedFile(p)
	}
}
