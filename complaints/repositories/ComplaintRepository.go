package repositories

import (
	"fmt"

	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	CreateComplaint(tx *gorm.DB, complaint *models.Complaint) (*models.Complaint, error)
	GetComplaintByID(id uuid.UUID) (*models.Complaint, error)
	GetCategoryByID(id uuid.UUID) (*models.ComplaintCategory, error)
	GetAllCategories() ([]models.ComplaintCategory, error)
}

type complaintRepository struct {
	DB *gorm.DB
}

// NewComplaintRepository initializes a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{DB: db}
}

func (cr *complaintRepository) CreateComplaint(tx *gorm.DB, complaint *models.Complaint) (*models.Complaint, error) {
	if err := tx.Create(complaint).Error; err != nil {
		config.Logger.Error("Failed to create complaint",
			zap.Error(err),
			zap.String("caseID", complaint.CaseID.String()))
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}

	config.Logger.Info("Created complaint successfully",
		zap.String("complaintID", complaint.ID.String()))

	return complaint, nil
}

func (cr *complaintRepository) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := cr.DB.
		Preload("Category").
		Preload("Complainant").
		Preload("Patient").
		Preload("Case").
		Where("id = ?", id).
		First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (cr *complaintRepository) GetCategoryByID(id uuid.UUID) (*models.ComplaintCategory, error) {
	var category models.ComplaintCategory
	if err := cr.DB.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAllCategories returns categories in insertion order; the grouping
// transform depends on that order being preserved.
func (cr *complaintRepository) GetAllCategories() ([]models.ComplaintCategory, error) {
	var categories []models.ComplaintCategory
	if err := cr.DB.Find(&categories).Error; err != nil {
		config.Logger.Error("Failed to get all complaint categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get all complaint categories: %w", err)
	}
	return categories, nil
}
