// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "flc_backend/internals/features/users/auth/controller"
	"flc_backend/internals/features/users/auth/service"
)

func AuthRoutes(app fiber.Router, tokens *service.TokenService) {
	authController := controller.NewAuthController(tokens)

	// 🔓 Public
	app.Post("/jwt", authController.IssueToken)
}
