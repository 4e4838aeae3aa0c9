package controllers

import (
	"complaint-intake-backend/config"
	"complaint-intake-backend/patients/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PatientController struct {
	PatientRepo repositories.PatientRepository
	DB          *gorm.DB
}

// GetFilteredPatientsController lists patients, optionally filtered by a
// case-insensitive substring match on name.
func (pc *PatientController) GetFilteredPatientsController(c *fiber.Ctx) error {
	query := c.Query("q")

	patients, err := pc.PatientRepo.GetFilteredPatients(query)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered patients", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusOK).JSON(patients)
}
