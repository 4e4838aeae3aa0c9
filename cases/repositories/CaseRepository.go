package repositories

import (
	"fmt"

	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CaseRepository interface {
	GetCaseByID(id uuid.UUID) (*models.Case, error)
	GetCasesByPatientID(patientID *uuid.UUID) ([]models.Case, error)
}

type caseRepository struct {
	DB *gorm.DB
}

// NewCaseRepository initializes a new case repository
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{DB: db}
}

func (cr *caseRepository) GetCaseByID(id uuid.UUID) (*models.Case, error) {
	var kase models.Case
	if err := cr.DB.Where("id = ?", id).First(&kase).Error; err != nil {
		return nil, err
	}
	return &kase, nil
}

// GetCasesByPatientID lists cases, optionally narrowed to a single patient.
func (cr *caseRepository) GetCasesByPatientID(patientID *uuid.UUID) ([]models.Case, error) {
	cases := make([]models.Case, 0)

	stmt := cr.DB.Model(&models.Case{})
	if patientID != nil {
		stmt = stmt.Where("patient_id = ?", *patientID)
	}

	if err := stmt.Find(&cases).Error; err != nil {
		config.Logger.Error("Failed to get filtered cases", zap.Error(err))
		return nil, fmt.Errorf("failed to get filtered cases: %w", err)
	}
	return cases, nil
}
