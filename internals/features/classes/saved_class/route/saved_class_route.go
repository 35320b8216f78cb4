package route

import (
	"github.com/gofiber/fiber/v2"

	savedController "flc_backend/internals/features/classes/saved_class/controller"
	"flc_backend/internals/features/classes/saved_class/repository"
	"flc_backend/internals/middlewares/auth"
)

func SavedClassRoutes(app fiber.Router, guard *auth.Guard, saved repository.SavedClassRepository) {
	ctrl := savedController.NewSavedClassController(saved)
	public := guard.Require(auth.Public)

	app.Get("/savedClass", public, ctrl.GetSavedClass)
	app.Post("/savedClass", public, ctrl.SaveClass)
	app.Get("/savedClass/:email", public, ctrl.GetStudentSavedClasses)
}
