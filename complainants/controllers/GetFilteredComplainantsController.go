package controllers

import (
	"complaint-intake-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredComplainantsController lists complainants, optionally filtered
// by a case-insensitive substring match on name or email. No matches is a
// normal empty result, never an error.
func (cc *ComplainantController) GetFilteredComplainantsController(c *fiber.Ctx) error {
	query := c.Query("q")

	complainants, err := cc.ComplainantRepo.GetFilteredComplainants(query)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered complainants", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(complainants)
}
