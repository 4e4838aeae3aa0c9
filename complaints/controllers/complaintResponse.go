package controllers

import (
	"time"

	"complaint-intake-backend/db/models"

	"github.com/google/uuid"
)

// Summaries embedded in complaint responses. Assembled explicitly from
// already-fetched rows; the persisted entity is never mutated to carry them.

type CategorySummary struct {
	ID           uuid.UUID `json:"id"`
	MainCategory string    `json:"main_category"`
	SubCategory  string    `json:"sub_category"`
}

type ComplainantSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type PatientSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

type CaseSummary struct {
	ID            uuid.UUID `json:"id"`
	CaseReference string    `json:"case_reference"`
	PatientID     uuid.UUID `json:"patient_id"`
}

type ComplaintResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`

	Category    CategorySummary    `json:"category"`
	Complainant ComplainantSummary `json:"complainant"`
	Patient     PatientSummary     `json:"patient"`
	Case        CaseSummary        `json:"case"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func buildComplaintResponse(
	complaint *models.Complaint,
	category *models.ComplaintCategory,
	complainant *models.Complainant,
	patient *models.Patient,
	kase *models.Case,
) ComplaintResponse {
	return ComplaintResponse{
		ID:          complaint.ID,
		Description: complaint.Description,
		Category: CategorySummary{
			ID:           category.ID,
			MainCategory: category.MainCategory,
			SubCategory:  category.SubCategory,
		},
		Complainant: ComplainantSummary{
			ID:    complainant.ID,
			Name:  complainant.Name,
			Email: complainant.Email,
		},
		Patient: PatientSummary{
			ID:          patient.ID,
			Name:        patient.Name,
			DateOfBirth: patient.DateOfBirth,
		},
		Case: CaseSummary{
			ID:            kase.ID,
			CaseReference: kase.CaseReference,
			PatientID:     kase.PatientID,
		},
		CreatedAt: complaint.CreatedAt,
		UpdatedAt: complaint.UpdatedAt,
	}
}
