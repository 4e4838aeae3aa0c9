package routes

import (
	case_repositories "complaint-intake-backend/cases/repositories"
	complainant_repositories "complaint-intake-backend/complainants/repositories"
	controllers "complaint-intake-backend/complaints/controllers"
	"complaint-intake-backend/complaints/repositories"
	patient_repositories "complaint-intake-backend/patients/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ComplaintInitRoutes(
	app *fiber.App,
	complaintRepo repositories.ComplaintRepository,
	complainantRepo complainant_repositories.ComplainantRepository,
	patientRepo patient_repositories.PatientRepository,
	caseRepo case_repositories.CaseRepository,
	db *gorm.DB,
) {
	complaintController := &controllers.ComplaintController{
		ComplaintRepo:   complaintRepo,
		ComplainantRepo: complainantRepo,
		PatientRepo:     patientRepo,
		CaseRepo:        caseRepo,
		DB:              db,
	}

	app.Get("/complaint-categories", complaintController.GetComplaintCategoriesController)
	app.Post("/complaints", complaintController.CreateComplaintController)
	app.Get("/complaints/:id", complaintController.GetComplaintController)
}
