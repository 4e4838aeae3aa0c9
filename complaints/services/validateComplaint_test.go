package services

import (
	"errors"
	"testing"

	case_repositories "complaint-intake-backend/cases/repositories"
	complainant_repositories "complaint-intake-backend/complainants/repositories"
	"complaint-intake-backend/complaints/repositories"
	"complaint-intake-backend/db/models"
	"complaint-intake-backend/internal/apperrors"
	"complaint-intake-backend/internal/testdb"
	patient_repositories "complaint-intake-backend/patients/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type validatorFixture struct {
	db        *gorm.DB
	validator ComplaintValidator

	category     models.ComplaintCategory
	complainant  models.Complainant
	patient      models.Patient
	otherPatient models.Patient
	kase         models.Case
}

func newValidatorFixture(t *testing.T) *validatorFixture {
	t.Helper()
	db := testdb.Open(t)

	f := &validatorFixture{
		db: db,
		validator: ComplaintValidator{
			ComplaintRepo:   repositories.NewComplaintRepository(db),
			ComplainantRepo: complainant_repositories.NewComplainantRepository(db),
			PatientRepo:     patient_repositories.NewPatientRepository(db),
			CaseRepo:        case_repositories.NewCaseRepository(db),
		},
		category: models.ComplaintCategory{MainCategory: "Clinical", SubCategory: "Diagnosis"},
		complainant: models.Complainant{
			Name:         "John Doe",
			Email:        "john.doe@example.com",
			AddressLine1: "123 Main St",
			City:         "Anytown",
			Postcode:     "12345",
		},
		patient:      models.Patient{Name: "John Smith"},
		otherPatient: models.Patient{Name: "Sarah Johnson"},
	}

	require.NoError(t, db.Create(&f.category).Error)
	require.NoError(t, db.Create(&f.complainant).Error)
	require.NoError(t, db.Create(&f.patient).Error)
	require.NoError(t, db.Create(&f.otherPatient).Error)

	f.kase = models.Case{CaseReference: "CASE-2026-001-001", PatientID: f.patient.ID}
	require.NoError(t, db.Create(&f.kase).Error)

	return f
}

func requireAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestValidateComplaintSuccessReturnsResolvedReferences(t *testing.T) {
	f := newValidatorFixture(t)

	refs, err := f.validator.Validate("Wrong medication dispensed",
		f.category.ID, f.complainant.ID, f.patient.ID, f.kase.ID)

	require.NoError(t, err)
	require.NotNil(t, refs)
	assert.Equal(t, f.category.ID, refs.Category.ID)
	assert.Equal(t, f.complainant.ID, refs.Complainant.ID)
	assert.Equal(t, f.patient.ID, refs.Patient.ID)
	assert.Equal(t, f.kase.ID, refs.Case.ID)
}

func TestValidateComplaintUnknownCategory(t *testing.T) {
	f := newValidatorFixture(t)
	missing := uuid.New()

	refs, err := f.validator.Validate("desc", missing, f.complainant.ID, f.patient.ID, f.kase.ID)

	require.Nil(t, refs)
	appErr := requireAppError(t, err, apperrors.CodeInvalidReference)
	assert.Contains(t, appErr.Message, missing.String())
	assert.Contains(t, appErr.Message, "category_id")
}

func TestValidateComplaintUnknownComplainant(t *testing.T) {
	f := newValidatorFixture(t)
	missing := uuid.New()

	_, err := f.validator.Validate("desc", f.category.ID, missing, f.patient.ID, f.kase.ID)

	appErr := requireAppError(t, err, apperrors.CodeInvalidReference)
	assert.Contains(t, appErr.Message, "complainant_id")
}

func TestValidateComplaintUnknownPatient(t *testing.T) {
	f := newValidatorFixture(t)
	missing := uuid.New()

	_, err := f.validator.Validate("desc", f.category.ID, f.complainant.ID, missing, f.kase.ID)

	appErr := requireAppError(t, err, apperrors.CodeInvalidReference)
	assert.Contains(t, appErr.Message, "patient_id")
}

func TestValidateComplaintUnknownCase(t *testing.T) {
	f := newValidatorFixture(t)
	missing := uuid.New()

	_, err := f.validator.Validate("desc", f.category.ID, f.complainant.ID, f.patient.ID, missing)

	appErr := requireAppError(t, err, apperrors.CodeInvalidReference)
	assert.Contains(t, appErr.Message, "case_id")
}

// A case that exists but belongs to a different patient is rejected with the
// same code as a missing case; only the message text differs.
func TestValidateComplaintCasePatientMismatch(t *testing.T) {
	f := newValidatorFixture(t)

	_, err := f.validator.Validate("desc", f.category.ID, f.complainant.ID, f.otherPatient.ID, f.kase.ID)

	appErr := requireAppError(t, err, apperrors.CodeInvalidReference)
	assert.Contains(t, appErr.Message, "Mismatched")
	assert.Contains(t, appErr.Message, f.kase.ID.String())
}

func TestValidateComplaintEmptyDescription(t *testing.T) {
	f := newValidatorFixture(t)

	for _, description := range []string{"", "   ", "\t\n"} {
		_, err := f.validator.Validate(description,
			f.category.ID, f.complainant.ID, f.patient.ID, f.kase.ID)
		requireAppError(t, err, apperrors.CodeEmptyDescription)
	}
}

// First failing check wins: an unknown category is reported even when the
// description is also blank.
func TestValidateComplaintCategoryCheckedBeforeDescription(t *testing.T) {
	f := newValidatorFixture(t)

	_, err := f.validator.Validate("", uuid.New(), f.complainant.ID, f.patient.ID, f.kase.ID)

	requireAppError(t, err, apperrors.CodeInvalidReference)
}
