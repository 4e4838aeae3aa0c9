package repositories

import (
	"fmt"

	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PatientRepository interface {
	GetPatientByID(id uuid.UUID) (*models.Patient, error)
	GetFilteredPatients(query string) ([]models.Patient, error)
}

type patientRepository struct {
	DB *gorm.DB
}

// NewPatientRepository initializes a new patient repository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{DB: db}
}

func (pr *patientRepository) GetPatientByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	if err := pr.DB.Where("id = ?", id).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetFilteredPatients lists patients, optionally narrowed by a
// case-insensitive substring match on name.
func (pr *patientRepository) GetFilteredPatients(query string) ([]models.Patient, error) {
	patients := make([]models.Patient, 0)

	stmt := pr.DB.Model(&models.Patient{})
	if query != "" {
		stmt = stmt.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}

	if err := stmt.Find(&patients).Error; err != nil {
		config.Logger.Error("Failed to get filtered patients", zap.Error(err))
		return nil, fmt.Errorf("failed to get filtered patients: %w", err)
	}
	return patients, nil
}
