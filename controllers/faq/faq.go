package faqController

import (
	"greenstech/database"
	"greenstech/middleware"
	"greenstech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type faqInput struct {
	Step     int    `json:"step"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	IsActive *bool  `json:"isActive"`
}

// GetFAQChat returns the active question/answer pairs for one step of the
// chat widget. Step defaults to 1 so the widget can open with no state.
func GetFAQChat(c *fiber.Ctx) error {
	step := c.QueryInt("step", 1)
	if step < 1 {
		step = 1
	}

	var faqs []models.FAQChat
	if err := database.Database.Db.Where("step = ? AND is_active = ?", step, true).
		Order("id ASC").Find(&faqs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch FAQ chat", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ chat fetched successfully.", faqs)
}

// GetAllFAQChat returns every pair grouped by step for the admin panel
func GetAllFAQChat(c *fiber.Ctx) error {
	var faqs []models.FAQChat
	if err := database.Database.Db.Order("step ASC, id ASC").Find(&faqs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch all FAQ chat", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ chat fetched successfully.", faqs)
}

// CreateFAQChat inserts one or many question/answer pairs. The whole batch
// goes in atomically so a partial chat flow is never published.
func CreateFAQChat(c *fiber.Ctx) error {
	var inputs []faqInput
	if err := c.BodyParser(&inputs); err != nil {
		var single faqInput
		if err := c.BodyParser(&single); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body", nil)
		}
		inputs = []faqInput{single}
	}
	if len(inputs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "At least one question is required", nil)
	}
	for _, in := range inputs {
		if in.Question == "" || in.Answer == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question and answer are required", nil)
		}
	}

	faqs := make([]models.FAQChat, 0, len(inputs))
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for _, in := range inputs {
			faq := models.FAQChat{
				Step:     in.Step,
				Question: in.Question,
				Answer:   in.Answer,
				IsActive: in.IsActive == nil || *in.IsActive,
			}
			if faq.Step < 1 {
				faq.Step = 1
			}
			if err := tx.Create(&faq).Error; err != nil {
				return err
			}
			faqs = append(faqs, faq)
		}
		return nil
	})
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create FAQ chat entries", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "FAQ chat entries created successfully", faqs)
}

// UpdateFAQChat updates one question/answer pair
func UpdateFAQChat(c *fiber.Ctx) error {
	db := database.Database.Db

	var faq models.FAQChat
	if err := db.First(&faq, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ entry not found", nil)
	}

	var input faqInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body", nil)
	}

	if input.Step > 0 {
		faq.Step = input.Step
	}
	if input.Question != "" {
		faq.Question = input.Question
	}
	if input.Answer != "" {
		faq.Answer = input.Answer
	}
	if input.IsActive != nil {
		faq.IsActive = *input.IsActive
	}

	if err := db.Save(&faq).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update FAQ entry", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ entry updated successfully", faq)
}

// DeleteFAQChat removes one question/answer pair
func DeleteFAQChat(c *fiber.Ctx) error {
	db := database.Database.Db

	var faq models.FAQChat
	if err := db.First(&faq, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "FAQ entry not found", nil)
	}

	if err := db.Unscoped().Delete(&faq).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete FAQ entry", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQ entry deleted successfully", nil)
}
