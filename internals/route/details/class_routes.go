package details

import (
	"github.com/gofiber/fiber/v2"

	classRepository "flc_backend/internals/features/classes/class/repository"
	classRoute "flc_backend/internals/features/classes/class/route"
	savedRepository "flc_backend/internals/features/classes/saved_class/repository"
	savedRoute "flc_backend/internals/features/classes/saved_class/route"
	"flc_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, guard *auth.Guard, classes classRepository.ClassRepository, saved savedRepository.SavedClassRepository) {
	classRoute.ClassRoutes(app, guard, classes)
	savedRoute.SavedClassRoutes(app, guard, saved)
}
