package controllers

import (
	"complaint-intake-backend/cases/repositories"
	"complaint-intake-backend/config"
	"complaint-intake-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CaseController struct {
	CaseRepo repositories.CaseRepository
	DB       *gorm.DB
}

// GetFilteredCasesController lists cases, optionally filtered by an exact
// patient_id match.
func (cc *CaseController) GetFilteredCasesController(c *fiber.Ctx) error {
	var patientID *uuid.UUID
	if raw := c.Query("patient_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return apperrors.Respond(c, apperrors.Validation("Invalid patient_id parameter"))
		}
		patientID = &parsed
	}

	cases, err := cc.CaseRepo.GetCasesByPatientID(patientID)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered cases", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(cases)
}
