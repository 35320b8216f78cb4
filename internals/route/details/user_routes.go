package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "flc_backend/internals/features/users/auth/route"
	authService "flc_backend/internals/features/users/auth/service"
	userRepository "flc_backend/internals/features/users/user/repository"
	userRoute "flc_backend/internals/features/users/user/route"
	"flc_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, guard *auth.Guard, tokens *authService.TokenService, users userRepository.UserRepository, openPromotion bool) {
	// 🔓 token exchange
	authRoute.AuthRoutes(app, tokens)

	userRoute.UserRoutes(app, guard, users, openPromotion)
}
