package route

import (
	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/constants"
	classController "flc_backend/internals/features/classes/class/controller"
	"flc_backend/internals/features/classes/class/repository"
	"flc_backend/internals/middlewares/auth"
)

func ClassRoutes(app fiber.Router, guard *auth.Guard, classes repository.ClassRepository) {
	ctrl := classController.NewClassController(classes)
	admin := guard.Require(auth.RoleOf(constants.RoleAdmin))

	app.Get("/class", guard.Require(auth.Authenticated), ctrl.GetClasses)
	app.Post("/class", guard.Require(auth.RoleOf(constants.RoleInstructor)), ctrl.CreateClass)
	app.Get("/class/:email", guard.Require(auth.Public), ctrl.GetInstructorClasses)
	app.Patch("/class/approve/:id", admin, ctrl.SetStatus(constants.ClassStatusApprove))
	app.Patch("/class/deny/:id", admin, ctrl.SetStatus(constants.ClassStatusDeny))
	app.Get("/approvedClass", guard.Require(auth.Public), ctrl.GetApprovedClasses)

	// Booking counter bump, public as the client calls it after checkout.
	app.Put("/payment/:name", guard.Require(auth.Public), ctrl.IncrementBooking)
}
