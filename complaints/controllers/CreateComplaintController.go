package controllers

import (
	case_repositories "complaint-intake-backend/cases/repositories"
	complainant_repositories "complaint-intake-backend/complainants/repositories"
	"complaint-intake-backend/complaints/repositories"
	"complaint-intake-backend/complaints/services"
	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/apperrors"
	patient_repositories "complaint-intake-backend/patients/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplaintController struct {
	ComplaintRepo   repositories.ComplaintRepository
	ComplainantRepo complainant_repositories.ComplainantRepository
	PatientRepo     patient_repositories.PatientRepository
	CaseRepo        case_repositories.CaseRepository
	DB              *gorm.DB
}

type CreateComplaintRequest struct {
	Description   string    `json:"description"`
	CategoryID    uuid.UUID `json:"category_id"`
	ComplainantID uuid.UUID `json:"complainant_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	CaseID        uuid.UUID `json:"case_id"`
}

func (cc *ComplaintController) CreateComplaintController(c *fiber.Ctx) error {
	var request CreateComplaintRequest

	// Parse incoming JSON payload
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Respond(c, apperrors.Validation("Invalid request payload"))
	}

	// Resolve and check every foreign reference before writing anything.
	// First failing check wins; on any rejection zero rows are written.
	validator := services.ComplaintValidator{
		ComplaintRepo:   cc.ComplaintRepo,
		ComplainantRepo: cc.ComplainantRepo,
		PatientRepo:     cc.PatientRepo,
		CaseRepo:        cc.CaseRepo,
	}
	refs, err := validator.Validate(
		request.Description,
		request.CategoryID,
		request.ComplainantID,
		request.PatientID,
		request.CaseID,
	)
	if err != nil {
		// AppErrors reach the client with their code and status; anything
		// else is an internal fault for the global error handler.
		return err
	}

	// --- Start Database Transaction ---
	tx := cc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	complaint := models.Complaint{
		Description:   request.Description,
		CategoryID:    request.CategoryID,
		ComplainantID: request.ComplainantID,
		PatientID:     request.PatientID,
		CaseID:        request.CaseID,
	}

	createdComplaint, err := cc.ComplaintRepo.CreateComplaint(tx, &complaint)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to create complaint in database", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit complaint transaction", zap.Error(err))
		return err
	}

	// Embed the rows resolved during validation instead of re-fetching them.
	response := buildComplaintResponse(
		createdComplaint,
		refs.Category,
		refs.Complainant,
		refs.Patient,
		refs.Case,
	)
	return c.Status(fiber.StatusCreated).JSON(response)
}
