package controllers

import (
	"errors"

	"complaint-intake-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplainantController retrieves a complainant by ID including address
// fields.
func (cc *ComplainantController) GetComplainantController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Respond(c, apperrors.NotFound("Complainant"))
	}

	complainant, err := cc.ComplainantRepo.GetComplainantByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Respond(c, apperrors.NotFound("Complainant"))
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(complainant)
}
