package moduleController

import (
	"encoding/json"

	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"
	"greenstech/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type topicPayload struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// GetModules returns the syllabus modules for a scope with their topics,
// falling back to the domain set and then the landing set
func GetModules(c *fiber.Ctx) error {
	db := database.Database.Db
	domainID, courseID := utils.QueryScope(c)

	modules, err := database.ResolveScopedList[models.Module](
		db, domainID, courseID,
		database.ListOptions{OrderBy: "sort_order ASC, id ASC"},
	)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch modules", err)
	}

	for i := range modules {
		if err := db.Where("module_id = ? AND is_active = ?", modules[i].ID, true).
			Order("sort_order ASC, id ASC").Find(&modules[i].Topics).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch module topics", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully.", modules)
}

// GetAllModules returns every module row with topics for the admin panel
func GetAllModules(c *fiber.Ctx) error {
	var modules []models.Module
	if err := database.Database.Db.Preload("Topics", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("sort_order ASC, id ASC").Find(&modules).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all modules", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully.", modules)
}

// GetModuleByID returns one module with its topics
func GetModuleByID(c *fiber.Ctx) error {
	var module models.Module
	if err := database.Database.Db.Preload("Topics").First(&module, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully.", module)
}

// CreateModule creates a module and its topics in one transaction
func CreateModule(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module title is required", nil)
	}

	var topics []topicPayload
	if raw := c.FormValue("topics"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &topics); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topics payload", nil)
		}
	}

	module := models.Module{
		DomainID:    utils.FormUint(c, "domainId", 0),
		CourseID:    utils.FormUint(c, "courseId", 0),
		Title:       title,
		Description: c.FormValue("description"),
		SortOrder:   utils.FormInt(c, "order", 0),
		IsActive:    utils.FormBool(c, "isActive", true),
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&module).Error; err != nil {
			return err
		}
		for _, t := range topics {
			topic := models.ModuleTopic{
				ModuleID:    module.ID,
				Title:       t.Title,
				Description: t.Description,
				SortOrder:   t.SortOrder,
				IsActive:    topicActive(t),
			}
			if err := tx.Create(&topic).Error; err != nil {
				return err
			}
			module.Topics = append(module.Topics, topic)
		}
		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create module", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully", module)
}

// UpdateModule updates a module and synchronises its topics against the
// submitted list. Topics with an id are updated, topics without one are
// inserted, and existing topics absent from the list are removed. The whole
// sync runs in one transaction so a failure leaves the module untouched.
func UpdateModule(c *fiber.Ctx) error {
	db := database.Database.Db

	var module models.Module
	if err := db.First(&module, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
	}

	topicsSubmitted := false
	var topics []topicPayload
	if raw := c.FormValue("topics"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &topics); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topics payload", nil)
		}
		topicsSubmitted = true
	}

	if v := c.FormValue("title"); v != "" {
		module.Title = v
	}
	if v := c.FormValue("description"); v != "" {
		module.Description = v
	}
	module.DomainID = utils.FormUint(c, "domainId", module.DomainID)
	module.CourseID = utils.FormUint(c, "courseId", module.CourseID)
	module.SortOrder = utils.FormInt(c, "order", module.SortOrder)
	module.IsActive = utils.FormBool(c, "isActive", module.IsActive)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&module).Error; err != nil {
			return err
		}
		if !topicsSubmitted {
			return nil
		}

		keep := make(map[uint]bool, len(topics))
		for _, t := range topics {
			if t.ID != 0 {
				keep[t.ID] = true
			}
		}

		var existing []models.ModuleTopic
		if err := tx.Where("module_id = ?", module.ID).Find(&existing).Error; err != nil {
			return err
		}
		for _, old := range existing {
			if !keep[old.ID] {
				if err := tx.Unscoped().Delete(&old).Error; err != nil {
					return err
				}
			}
		}

		for _, t := range topics {
			if t.ID != 0 {
				var topic models.ModuleTopic
				if err := tx.Where("id = ? AND module_id = ?", t.ID, module.ID).First(&topic).Error; err != nil {
					return err
				}
				topic.Title = t.Title
				topic.Description = t.Description
				topic.SortOrder = t.SortOrder
				topic.IsActive = topicActive(t)
				if err := tx.Save(&topic).Error; err != nil {
					return err
				}
			} else {
				topic := models.ModuleTopic{
					ModuleID:    module.ID,
					Title:       t.Title,
					Description: t.Description,
					SortOrder:   t.SortOrder,
					IsActive:    topicActive(t),
				}
				if err := tx.Create(&topic).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module", err)
	}

	if err := db.Preload("Topics").First(&module, module.ID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update module", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully", module)
}

// DeleteModule removes a module together with its topics
func DeleteModule(c *fiber.Ctx) error {
	db := database.Database.Db

	var module models.Module
	if err := db.First(&module, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("module_id = ?", module.ID).Delete(&models.ModuleTopic{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&module).Error
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete module", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully", nil)
}

func topicActive(t topicPayload) bool {
	if t.IsActive == nil {
		return true
	}
	return *t.IsActive
}
