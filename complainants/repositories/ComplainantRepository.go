package repositories

import (
	"fmt"

	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplainantRepository interface {
	CreateComplainant(tx *gorm.DB, complainant *models.Complainant) (*models.Complainant, error)
	GetComplainantByID(id uuid.UUID) (*models.Complainant, error)
	GetFilteredComplainants(query string) ([]models.Complainant, error)
}

type complainantRepository struct {
	DB *gorm.DB
}

// NewComplainantRepository initializes a new complainant repository
func NewComplainantRepository(db *gorm.DB) ComplainantRepository {
	return &complainantRepository{DB: db}
}

func (cr *complainantRepository) CreateComplainant(tx *gorm.DB, complainant *models.Complainant) (*models.Complainant, error) {
	if err := tx.Create(complainant).Error; err != nil {
		config.Logger.Error("Failed to create complainant",
			zap.Error(err),
			zap.String("complainantName", complainant.Name))
		return nil, fmt.Errorf("failed to create complainant: %w", err)
	}

	config.Logger.Info("Created complainant successfully",
		zap.String("complainantID", complainant.ID.String()))

	return complainant, nil
}

func (cr *complainantRepository) GetComplainantByID(id uuid.UUID) (*models.Complainant, error) {
	var complainant models.Complainant
	if err := cr.DB.Where("id = ?", id).First(&complainant).Error; err != nil {
		return nil, err
	}
	return &complainant, nil
}

// GetFilteredComplainants lists complainants, optionally narrowed by a
// case-insensitive substring match against name OR email.
func (cr *complainantRepository) GetFilteredComplainants(query string) ([]models.Complainant, error) {
	complainants := make([]models.Complainant, 0)

	stmt := cr.DB.Model(&models.Complainant{})
	if query != "" {
		pattern := "%" + query + "%"
		stmt = stmt.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}

	if err := stmt.Find(&complainants).Error; err != nil {
		config.Logger.Error("Failed to get filtered complainants", zap.Error(err))
		return nil, fmt.Errorf("failed to get filtered complainants: %w", err)
	}
	return complainants, nil
}
