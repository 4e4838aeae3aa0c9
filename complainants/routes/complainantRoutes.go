package routes

import (
	controllers "complaint-intake-backend/complainants/controllers"
	"complaint-intake-backend/complainants/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ComplainantInitRoutes(
	app *fiber.App,
	complainantRepo repositories.ComplainantRepository,
	db *gorm.DB,
) {
	complainantController := &controllers.ComplainantController{
		ComplainantRepo: complainantRepo,
		DB:              db,
	}

	app.Post("/complainants", complainantController.CreateComplainantController)
	app.Get("/complainants", complainantController.GetFilteredComplainantsController)
	app.Get("/complainants/:id", complainantController.GetComplainantController)
}
