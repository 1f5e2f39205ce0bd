package projectController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProjects returns the showcase projects for a scope with their tech
// tags, falling back to the domain set and then the landing set
func GetProjects(c *fiber.Ctx) error {
	db := database.Database.Db
	domainID, courseID := utils.QueryScope(c)

	projects, err := database.ResolveScopedList[models.Project](
		db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch projects", err)
	}

	for i := range projects {
		if err := db.Where("project_id = ? AND is_active = ?", projects[i].ID, true).
			Order("id ASC").Find(&projects[i].Tech).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch project tech", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully.", projects)
}

// GetAllProjects returns every project row with tech tags for the admin panel
func GetAllProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.Preload("Tech").
		Order("sort_order ASC, id ASC").Find(&projects).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all projects", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully.", projects)
}

// GetProjectByID returns one project with its tech tags
func GetProjectByID(c *fiber.Ctx) error {
	var project models.Project
	if err := database.Database.Db.Preload("Tech").First(&project, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project fetched successfully.", project)
}

// CreateProject creates a project with its image and tech tags
func CreateProject(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Project title is required", nil)
	}

	var tech []string
	if raw := c.FormValue("tech"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tech); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tech payload", nil)
		}
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		if !utils.ValidImageUpload(file) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only image files allowed", nil)
		}
		imageURL, err = utils.SaveUploadedFile(file, utils.UploadProjects)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store project image", err)
		}
	}

	project := models.Project{
		DomainID:    utils.FormUint(c, "domainId", 0),
		CourseID:    utils.FormUint(c, "courseId", 0),
		Title:       title,
		Description: c.FormValue("description"),
		ImageURL:    imageURL,
		SortOrder:   utils.FormInt(c, "order", 0),
		IsActive:    utils.FormBool(c, "isActive", true),
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		for _, name := range tech {
			tag := models.ProjectTech{ProjectID: project.ID, Name: name, IsActive: true}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
			project.Tech = append(project.Tech, tag)
		}
		return nil
	})
	if err != nil {
		if imageURL != "" {
			utils.DeleteUploadedFile(imageURL)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create project", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully", project)
}

// UpdateProject updates a project. When a tech list is submitted the old
// tags are replaced wholesale, which keeps the admin form simple.
func UpdateProject(c *fiber.Ctx) error {
	db := database.Database.Db

	var project models.Project
	if err := db.First(&project, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found", nil)
	}

	techSubmitted := false
	var tech []string
	if raw := c.FormValue("tech"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &tech); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tech payload", nil)
		}
		techSubmitted = true
	}

	oldImage, newImage := "", ""
	if file, err := c.FormFile("image"); err == nil {
		path, saveErr := utils.SaveUploadedFile(file, utils.UploadProjects)
		if saveErr != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store project image", saveErr)
		}
		oldImage, newImage = project.ImageURL, path
		project.ImageURL = path
	}

	if v := c.FormValue("title"); v != "" {
		project.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		project.Description = v
	}
	project.DomainID = utils.FormUint(c, "domainId", project.DomainID)
	project.CourseID = utils.FormUint(c, "courseId", project.CourseID)
	project.SortOrder = utils.FormInt(c, "order", project.SortOrder)
	project.IsActive = utils.FormBool(c, "isActive", project.IsActive)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&project).Error; err != nil {
			return err
		}
		if !techSubmitted {
			return nil
		}
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		for _, name := range tech {
			if err := tx.Create(&models.ProjectTech{ProjectID: project.ID, Name: name, IsActive: true}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if newImage != "" {
			utils.DeleteUploadedFile(newImage)
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update project", err)
	}

	if oldImage != "" {
		utils.DeleteUploadedFile(oldImage)
	}

	if err := db.Preload("Tech").First(&project, project.ID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update project", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project updated successfully", project)
}

// DeleteProject removes a project, its tech tags and its image
func DeleteProject(c *fiber.Ctx) error {
	db := database.Database.Db

	var project models.Project
	if err := db.First(&project, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", project.ID).Delete(&models.ProjectTech{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&project).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete project", err)
	}

	utils.DeleteUploadedFile(project.ImageURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully", nil)
}
