package main

import (
	"complaint-intake-backend/config"
	"complaint-intake-backend/middleware"
	"complaint-intake-backend/seeds"

	// Repositories
	case_repositories "complaint-intake-backend/cases/repositories"
	complainant_repositories "complaint-intake-backend/complainants/repositories"
	complaint_repositories "complaint-intake-backend/complaints/repositories"
	patient_repositories "complaint-intake-backend/patients/repositories"

	// Routes
	case_routes "complaint-intake-backend/cases/routes"
	complainant_routes "complaint-intake-backend/complainants/routes"
	complaint_routes "complaint-intake-backend/complaints/routes"
	patient_routes "complaint-intake-backend/patients/routes"

	"complaint-intake-backend/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration once; everything downstream receives it explicitly
	cfg := config.LoadConfig()

	// Initialize Zap logger
	config.InitLogger(cfg)
	defer config.Logger.Sync()

	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler(config.Logger),
	})

	// Apply CORS and request logging middleware
	middleware.InitCors(app, cfg)
	app.Use(middleware.RequestLogger(config.Logger))

	// Initialize database (waits for connectivity, migrates, configures pool)
	db := config.ConfigureDatabase(cfg)

	// Repositories
	complaintRepo := complaint_repositories.NewComplaintRepository(db)
	complainantRepo := complainant_repositories.NewComplainantRepository(db)
	patientRepo := patient_repositories.NewPatientRepository(db)
	caseRepo := case_repositories.NewCaseRepository(db)

	// Routes
	complaint_routes.ComplaintInitRoutes(app, complaintRepo, complainantRepo, patientRepo, caseRepo, db)
	complainant_routes.ComplainantInitRoutes(app, complainantRepo, db)
	patient_routes.PatientInitRoutes(app, patientRepo, db)
	case_routes.CaseInitRoutes(app, caseRepo, db)

	if cfg.SeedOnStartup {
		config.Logger.Info("Starting database seeding...")
		if err := seeds.SeedAll(db); err != nil {
			config.Logger.Error("Database seeding failed", zap.Error(err))
		}
	}

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", cfg.Port))
	config.Logger.Fatal("Server failed", zap.String("port", cfg.Port), zap.Error(app.Listen(":"+cfg.Port)))
}
