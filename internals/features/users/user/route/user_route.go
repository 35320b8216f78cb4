package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/constants"
	userController "flc_backend/internals/features/users/user/controller"
	"flc_backend/internals/features/users/user/repository"
	"flc_backend/internals/middlewares/auth"
)

// UserRoutes wires the user directory. openPromotion drops the admin gate on
// the promotion endpoints.
func UserRoutes(app fiber.Router, guard *auth.Guard, users repository.UserRepository, openPromotion bool) {
	ctrl := userController.NewUserController(users)

	promotion := auth.RoleOf(constants.RoleAdmin)
	if openPromotion {
		log.Println("[WARN] OPEN_ROLE_PROMOTION is on: PATCH /users/{admin,instructor}/:id is not gated")
		promotion = auth.Public
	}

	app.Get("/users", guard.Require(auth.RoleOf(constants.RoleAdmin)), ctrl.GetUsers)
	app.Post("/users", guard.Require(auth.Public), ctrl.Register)

	app.Get("/users/admin/:email", guard.Require(auth.Authenticated), ctrl.RoleFlag(constants.RoleAdmin))
	app.Get("/users/instructor/:email", guard.Require(auth.Authenticated), ctrl.RoleFlag(constants.RoleInstructor))
	app.Get("/users/student/:email", guard.Require(auth.Authenticated), ctrl.RoleFlag(constants.RoleStudent))

	app.Patch("/users/admin/:id", guard.Require(promotion), ctrl.Promote(constants.RoleAdmin))
	app.Patch("/users/instructor/:id", guard.Require(promotion), ctrl.Promote(constants.RoleInstructor))

	app.Get("/instructor", guard.Require(auth.Public), ctrl.GetInstructors)
}
