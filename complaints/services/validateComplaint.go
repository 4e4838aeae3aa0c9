package services

import (
	"errors"
	"fmt"
	"strings"

	case_repositories "complaint-intake-backend/cases/repositories"
	complainant_repositories "complaint-intake-backend/complainants/repositories"
	"complaint-intake-backend/complaints/repositories"
	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/apperrors"
	patient_repositories "complaint-intake-backend/patients/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintReferences holds the rows resolved during intake validation so the
// response can embed them without a second round-trip.
type ComplaintReferences struct {
	Category    *models.ComplaintCategory
	Complainant *models.Complainant
	Patient     *models.Patient
	Case        *models.Case
}

// ComplaintValidator resolves and checks every foreign reference of a
// candidate complaint before anything is written.
type ComplaintValidator struct {
	ComplaintRepo   repositories.ComplaintRepository
	ComplainantRepo complainant_repositories.ComplainantRepository
	PatientRepo     patient_repositories.PatientRepository
	CaseRepo        case_repositories.CaseRepository
}

// Validate runs the intake checks in a fixed order so error reporting is
// deterministic: category, complainant, patient, case (existence and patient
// match), then description. The first failing check wins and nothing is
// persisted on any failure. Returns the resolved rows on success.
func (v *ComplaintValidator) Validate(
	description string,
	categoryID, complainantID, patientID, caseID uuid.UUID,
) (*ComplaintReferences, error) {
	category, err := v.ComplaintRepo.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidReference(fmt.Sprintf("Invalid category_id: %s", categoryID))
		}
		return nil, fmt.Errorf("failed to look up category %s: %w", categoryID, err)
	}

	complainant, err := v.ComplainantRepo.GetComplainantByID(complainantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidReference(fmt.Sprintf("Invalid complainant_id: %s", complainantID))
		}
		return nil, fmt.Errorf("failed to look up complainant %s: %w", complainantID, err)
	}

	patient, err := v.PatientRepo.GetPatientByID(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidReference(fmt.Sprintf("Invalid patient_id: %s", patientID))
		}
		return nil, fmt.Errorf("failed to look up patient %s: %w", patientID, err)
	}

	kase, err := v.CaseRepo.GetCaseByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.InvalidReference(fmt.Sprintf("Invalid case_id: %s", caseID))
		}
		return nil, fmt.Errorf("failed to look up case %s: %w", caseID, err)
	}
	// The case exists but must also belong to the stated patient. Same error
	// code as a missing case; only the message differs.
	if kase.PatientID != patientID {
		return nil, apperrors.InvalidReference(fmt.Sprintf("Mismatched case_id: %s does not belong to patient %s", caseID, patientID))
	}

	if strings.TrimSpace(description) == "" {
		return nil, apperrors.EmptyDescription()
	}

	return &ComplaintReferences{
		Category:    category,
		Complainant: complainant,
		Patient:     patient,
		Case:        kase,
	}, nil
}
