package controllers

import (
	"complaint-intake-backend/complainants/repositories"
	"complaint-intake-backend/complainants/services"
	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplainantController struct {
	ComplainantRepo repositories.ComplainantRepository
	DB              *gorm.DB
}

type CreateComplainantRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city"`
	Postcode     string  `json:"postcode"`
}

func (cc *ComplainantController) CreateComplainantController(c *fiber.Ctx) error {
	var request CreateComplainantRequest

	// Parse incoming JSON payload
	if err := c.BodyParser(&request); err != nil {
		return apperrors.Respond(c, apperrors.Validation("Invalid request payload"))
	}

	// Map DTO to GORM model
	complainant := models.Complainant{
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		AddressLine1: request.AddressLine1,
		AddressLine2: request.AddressLine2,
		City:         request.City,
		Postcode:     request.Postcode,
	}

	// Validate the complainant data
	validationError := services.ValidateComplainant(&complainant)
	if validationError != "" {
		return apperrors.Respond(c, apperrors.Validation(validationError))
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

	createdComplainant, err := cc.ComplainantRepo.CreateComplainant(tx, &complainant)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to create complainant in database",
			zap.Error(err),
			zap.String("complainantName", complainant.Name))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit complainant transaction", zap.Error(err))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(createdComplainant)
}
