package seeds

import (
	"fmt"
	"time"

	"complaint-intake-backend/config"
	"complaint-intake-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var seedCategories = []models.ComplaintCategory{
	{MainCategory: "Clinical", SubCategory: "Diagnosis"},
	{MainCategory: "Clinical", SubCategory: "Medication"},
	{MainCategory: "Clinical", SubCategory: "Quality of Care"},
	{MainCategory: "Administrative", SubCategory: "Billing"},
	{MainCategory: "Administrative", SubCategory: "Appointment"},
	{MainCategory: "Administrative", SubCategory: "Communication"},
	{MainCategory: "Technical", SubCategory: "Website Issue"},
	{MainCategory: "Technical", SubCategory: "Equipment"},
}

var seedPatients = []models.Patient{
	{Name: "John Smith", DateOfBirth: time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)},
	{Name: "Sarah Johnson", DateOfBirth: time.Date(1990, 7, 22, 0, 0, 0, 0, time.UTC)},
	{Name: "Michael Brown", DateOfBirth: time.Date(1978, 11, 8, 0, 0, 0, 0, time.UTC)},
	{Name: "Emily Davis", DateOfBirth: time.Date(1995, 1, 30, 0, 0, 0, 0, time.UTC)},
	{Name: "Robert Wilson", DateOfBirth: time.Date(1982, 9, 12, 0, 0, 0, 0, time.UTC)},
	{Name: "Lisa Garcia", DateOfBirth: time.Date(1987, 5, 18, 0, 0, 0, 0, time.UTC)},
}

// SeedComplaintCategories loads the reference taxonomy. Skips seeding when
// categories already exist so repeated startups stay idempotent.
func SeedComplaintCategories(db *gorm.DB) error {
	config.Logger.Info("Seeding complaint categories...")

	var count int64
	if err := db.Model(&models.ComplaintCategory{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count complaint categories: %w", err)
	}
	if count > 0 {
		config.Logger.Info("Existing categories found, skipping category seeding",
			zap.Int64("count", count))
		return nil
	}

	categories := make([]models.ComplaintCategory, len(seedCategories))
	copy(categories, seedCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed complaint categories: %w", err)
	}

	config.Logger.Info("Seeded complaint categories",
		zap.Int("count", len(categories)))
	return nil
}

// SeedPatients loads the demo patients and returns them for case creation.
func SeedPatients(db *gorm.DB) ([]models.Patient, error) {
	config.Logger.Info("Seeding patients...")

	var existing []models.Patient
	if err := db.Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing patients: %w", err)
	}
	if len(existing) > 0 {
		config.Logger.Info("Existing patients found, skipping patient seeding",
			zap.Int("count", len(existing)))
		return existing, nil
	}

	patients := make([]models.Patient, len(seedPatients))
	copy(patients, seedPatients)
	if err := db.Create(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to seed patients: %w", err)
	}

	config.Logger.Info("Seeded patients", zap.Int("count", len(patients)))
	return patients, nil
}

// SeedCases creates two demo cases per patient with references of the form
// CASE-<year>-<patient>-<seq>.
func SeedCases(db *gorm.DB, patients []models.Patient) error {
	config.Logger.Info("Seeding cases...")

	var count int64
	if err := db.Model(&models.Case{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cases: %w", err)
	}
	if count > 0 {
		config.Logger.Info("Existing cases found, skipping case seeding",
			zap.Int64("count", count))
		return nil
	}

	year := time.Now().Year()
	var cases []models.Case
	for i, patient := range patients {
		for seq := 1; seq <= 2; seq++ {
			cases = append(cases, models.Case{
				CaseReference: fmt.Sprintf("CASE-%d-%03d-%03d", year, i+1, seq),
				PatientID:     patient.ID,
			})
		}
	}

	if len(cases) == 0 {
		return nil
	}
	if err := db.Create(&cases).Error; err != nil {
		return fmt.Errorf("failed to seed cases: %w", err)
	}

	config.Logger.Info("Seeded cases", zap.Int("count", len(cases)))
	return nil
}

// SeedAll runs the full seeding sequence: categories, then patients, then the
// cases that reference them.
func SeedAll(db *gorm.DB) error {
	if err := SeedComplaintCategories(db); err != nil {
		return err
	}

	patients, err := SeedPatients(db)
	if err != nil {
		return err
	}

	if err := SeedCases(db, patients); err != nil {
		return err
	}

	config.Logger.Info("Database seeding complete")
	return nil
}
