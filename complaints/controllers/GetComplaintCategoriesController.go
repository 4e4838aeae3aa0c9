package controllers

import (
	"complaint-intake-backend/complaints/services"
	"complaint-intake-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetComplaintCategoriesController returns all complaint categories grouped
// by main category, in first-seen order.
func (cc *ComplaintController) GetComplaintCategoriesController(c *fiber.Ctx) error {
	categories, err := cc.ComplaintRepo.GetAllCategories()
	if err != nil {
		config.Logger.Error("Failed to fetch complaint categories", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(services.GroupCategories(categories))
}
