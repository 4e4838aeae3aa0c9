package routes

import (
	controllers "complaint-intake-backend/patients/controllers"
	"complaint-intake-backend/patients/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PatientInitRoutes(
	app *fiber.App,
	patientRepo repositories.PatientRepository,
	db *gorm.DB,
) {
	patientController := &controllers.PatientController{
		PatientRepo: patientRepo,
		DB:          db,
	}

	app.Get("/patients", patientController.GetFilteredPatientsController)
}
