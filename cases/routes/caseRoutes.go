package routes

import (
	controllers "complaint-intake-backend/cases/controllers"
	"complaint-intake-backend/cases/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CaseInitRoutes(
	app *fiber.App,
	caseRepo repositories.CaseRepository,
	db *gorm.DB,
) {
	caseController := &controllers.CaseController{
		CaseRepo: caseRepo,
		DB:       db,
	}

	app.Get("/cases", caseController.GetFilteredCasesController)
}
