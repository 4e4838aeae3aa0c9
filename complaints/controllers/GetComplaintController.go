package controllers

import (
	"errors"

	"complaint-intake-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplaintController fetches a single complaint with its category,
// complainant, patient and case embedded.
func (cc *ComplaintController) GetComplaintController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.Respond(c, apperrors.NotFound("Complaint"))
	}

	complaint, err := cc.ComplaintRepo.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Respond(c, apperrors.NotFound("Complaint"))
		}
		return err
	}

	response := buildComplaintResponse(
		complaint,
		&complaint.Category,
		&complaint.Complainant,
		&complaint.Patient,
		&complaint.Case,
	)
	return c.Status(fiber.StatusOK).JSON(response)
}
