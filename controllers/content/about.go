package contentController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAbout returns the about section for the requested scope
func GetAbout(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	about, err := database.ResolveScoped[models.About](database.Database.Db, domainID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "About data not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About fetched successfully.", about)
}

// GetAllAbouts returns every about row for the admin panel
func GetAllAbouts(c *fiber.Ctx) error {
	var abouts []models.About
	if err := database.Database.Db.Order("created_at DESC").Find(&abouts).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all about sections", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "About sections fetched successfully.", abouts)
}

// GetAboutByID returns one about row by primary key
func GetAboutByID(c *fiber.Ctx) error {
	var about models.About
	if err := database.Database.Db.First(&about, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "About section not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "About fetched successfully.", about)
}

// CreateAbout creates an about row with one or more slideshow images
func CreateAbout(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["mainImages"]) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Main images are required", nil)
	}

	var imagePaths []string
	for _, file := range form.File["mainImages"] {
		if !utils.ValidImageUpload(file) {
			deleteFiles(imagePaths)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		path, err := utils.SaveUploadedFile(file, utils.UploadAbout)
		if err != nil {
			deleteFiles(imagePaths)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store about image", err)
		}
		imagePaths = append(imagePaths, path)
	}

	about := models.About{
		DomainID:     utils.FormUint(c, "domainId", 0),
		CourseID:     utils.FormUint(c, "courseId", 0),
		Label:        c.FormValue("label"),
		Heading:      c.FormValue("heading"),
		Description1: c.FormValue("description1"),
		Description2: c.FormValue("description2"),
		MainImages:   imagePaths,
		IsActive:     utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&about).Error; err != nil {
		deleteFiles(imagePaths)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create about section", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "About section created successfully", about)
}

// UpdateAbout updates an about row; kept images come in existingMainImages,
// the rest are removed from disk once the row is saved
func UpdateAbout(c *fiber.Ctx) error {
	db := database.Database.Db

	var about models.About
	if err := db.First(&about, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "About section not found", nil)
	}

	var keptImages []string
	if raw := c.FormValue("existingMainImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &keptImages); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid existingMainImages payload", nil)
		}
	}

	keep := make(map[string]bool, len(keptImages))
	for _, img := range keptImages {
		keep[img] = true
	}
	var removed []string
	for _, img := range about.MainImages {
		if !keep[img] {
			removed = append(removed, img)
		}
	}

	var newPaths []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["mainImages"] {
			path, err := utils.SaveUploadedFile(file, utils.UploadAbout)
			if err != nil {
				deleteFiles(newPaths)
				return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store about image", err)
			}
			newPaths = append(newPaths, path)
		}
	}

	if v := c.FormValue("label"); v != "" {
		about.Label = v
	}
	if v := c.FormValue("heading"); v != "" {
		about.Heading = v
	}
	if v := c.FormValue("description1"); v != "" {
		about.Description1 = v
	}
	if v := c.FormValue("description2"); v != "" {
		about.Description2 = v
	}
	about.DomainID = utils.FormUint(c, "domainId", about.DomainID)
	about.CourseID = utils.FormUint(c, "courseId", about.CourseID)
	about.IsActive = utils.FormBool(c, "isActive", about.IsActive)
	about.MainImages = append(keptImages, newPaths...)

	if err := db.Save(&about).Error; err != nil {
		deleteFiles(newPaths)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update about section", err)
	}

	deleteFiles(removed)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About section updated successfully", about)
}

// DeleteAbout removes an about row and its images
func DeleteAbout(c *fiber.Ctx) error {
	db := database.Database.Db

	var about models.About
	if err := db.First(&about, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "About not found", nil)
	}

	if err := db.Unscoped().Delete(&about).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete about section", err)
	}

	deleteFiles(about.MainImages)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "About section deleted successfully", nil)
}

func deleteFiles(paths []string) {
	for _, p := range paths {
		utils.DeleteUploadedFile(p)
	}
}
