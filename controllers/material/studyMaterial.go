package materialController

import (
	"path/filepath"
	"strings"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
)

var materialExtensions = map[string][]string{
	models.MaterialTypePDF:          {".pdf"},
	models.MaterialTypeDOCX:         {".doc", ".docx"},
	models.MaterialTypeVideo:        {".mp4", ".webm", ".mov", ".avi"},
	models.MaterialTypePresentation: {".ppt", ".pptx", ".pdf"},
	models.MaterialTypeEbook:        {".epub", ".mobi", ".pdf"},
}

func validMaterialExt(fileType, name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range materialExtensions[fileType] {
		if ext == allowed {
			return true
		}
	}
	return false
}

// GetStudyMaterials returns study materials for a scope, falling back to
// the domain set and then the landing set. The landing tier is shuffled so
// returning visitors see a rotating sample rather than the same few files.
func GetStudyMaterials(c *fiber.Ctx) error {
	domainID, courseID := utils.QueryScope(c)

	items, err := database.ResolveScopedList[models.StudyMaterial](
		database.Database.Db, domainID, courseID,
		database.ListOptions{OrderBy: "id ASC", ShuffleGlobal: true},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch study materials", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study materials fetched successfully.", items)
}

// GetAllStudyMaterials returns every study material row for the admin panel
func GetAllStudyMaterials(c *fiber.Ctx) error {
	var items []models.StudyMaterial
	if err := database.Database.Db.Order("created_at DESC").Find(&items).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all study materials", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study materials fetched successfully.", items)
}

// GetStudyMaterialByID returns one study material row by primary key
func GetStudyMaterialByID(c *fiber.Ctx) error {
	var item models.StudyMaterial
	if err := database.Database.Db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material fetched successfully.", item)
}

// CreateStudyMaterial creates a study material with its file and an
// optional cover image. The file extension must match the declared type.
func CreateStudyMaterial(c *fiber.Ctx) error {
	fileType := strings.ToUpper(c.FormValue("fileType"))
	if _, ok := materialExtensions[fileType]; !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file type", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Material file is required", nil)
	}
	if !validMaterialExt(fileType, file.Filename) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File does not match the declared type", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, utils.UploadStudyMaterials)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store material file", err)
	}

	imageURL := ""
	if cover, coverErr := c.FormFile("image"); coverErr == nil {
		if !utils.ValidImageUpload(cover) {
			utils.DeleteUploadedFile(filePath)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imageURL, err = utils.SaveUploadedFile(cover, utils.UploadStudyMaterials)
		if err != nil {
			utils.DeleteUploadedFile(filePath)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store cover image", err)
		}
	}

	item := models.StudyMaterial{
		DomainID:    utils.FormUint(c, "domainId", 0),
		CourseID:    utils.FormUint(c, "courseId", 0),
		FileName:    c.FormValue("fileName", file.Filename),
		Description: c.FormValue("description"),
		FileType:    fileType,
		Highlight:   c.FormValue("highlight"),
		FilePath:    filePath,
		ImageURL:    imageURL,
		IsActive:    utils.FormBool(c, "isActive", true),
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		utils.DeleteUploadedFile(filePath)
		if imageURL != "" {
			utils.DeleteUploadedFile(imageURL)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create study material", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Study material created successfully", item)
}

// UpdateStudyMaterial updates a study material, replacing the file or cover
// image when new ones are uploaded
func UpdateStudyMaterial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.StudyMaterial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found", nil)
	}

	if v := strings.ToUpper(c.FormValue("fileType")); v != "" {
		if _, ok := materialExtensions[v]; !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file type", nil)
		}
		item.FileType = v
	}

	oldFile, newFile, oldImage, newImage := "", "", "", ""
	if file, err := c.FormFile("file"); err == nil {
		if !validMaterialExt(item.FileType, file.Filename) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File does not match the declared type", nil)
		}
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadStudyMaterials)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store material file", saveErr)
		}
		oldFile, newFile = item.FilePath, path
		item.FilePath = path
	}
	if cover, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(cover) {
			utils.DeleteUploadedFile(newFile)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		path, saveErr := utils.SaveUploadedFile(cover, utils.UploadStudyMaterials)
		if saveErr != nil {
			utils.DeleteUploadedFile(newFile)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store cover image", saveErr)
		}
		oldImage, newImage = item.ImageURL, path
		item.ImageURL = path
	}

	if v := c.FormValue("fileName"); v != "" {
		item.FileName = v
	}
	if v := c.FormValue("description"); v != "" {
		item.Description = v
	}
	if v := c.FormValue("highlight"); v != "" {
		item.Highlight = v
	}
	item.DomainID = utils.FormUint(c, "domainId", item.DomainID)
	item.CourseID = utils.FormUint(c, "courseId", item.CourseID)
	item.IsActive = utils.FormBool(c, "isActive", item.IsActive)

	if err := db.Save(&item).Error; err != nil {
		utils.DeleteUploadedFile(newFile)
		utils.DeleteUploadedFile(newImage)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update study material", err)
	}

	if oldFile != "" {
		utils.DeleteUploadedFile(oldFile)
	}
	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material updated successfully", item)
}

// DeleteStudyMaterial removes a study material with its file and cover image
func DeleteStudyMaterial(c *fiber.Ctx) error {
	db := database.Database.Db

	var item models.StudyMaterial
	if err := db.First(&item, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Study material not found", nil)
	}

	if err := db.Unscoped().Delete(&item).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete study material", err)
	}

	utils.DeleteUploadedFile(item.FilePath)
	utils.DeleteUploadedFile(item.ImageURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study material deleted successfully", nil)
}
