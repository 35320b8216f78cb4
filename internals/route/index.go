package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	classRepository "flc_backend/internals/features/classes/class/repository"
	savedRepository "flc_backend/internals/features/classes/saved_class/repository"
	paymentController "flc_backend/internals/features/payment/payments/controller"
	paymentRepository "flc_backend/internals/features/payment/payments/repository"
	authService "flc_backend/internals/features/users/auth/service"
	userRepository "flc_backend/internals/features/users/user/repository"
	"flc_backend/internals/middlewares/auth"
	routeDetails "flc_backend/internals/route/details"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are opened in main and shared by every handler.
type Dependencies struct {
	Tokens   *authService.TokenService
	Users    userRepository.UserRepository
	Classes  classRepository.ClassRepository
	Saved    savedRepository.SavedClassRepository
	Payments paymentRepository.PaymentRepository
	Intents  paymentController.IntentCreator
	Store    Pinger

	OpenRolePromotion bool
}

var startTime time.Time

func SetupRoutes(app *fiber.App, deps Dependencies) {
	startTime = time.Now()
	guard := auth.NewGuard(deps.Tokens, deps.Users)

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, deps.Store)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, guard, deps.Tokens, deps.Users, deps.OpenRolePromotion)

	log.Println("[INFO] Setting up ClassRoutes...")
	routeDetails.ClassRoutes(app, guard, deps.Classes, deps.Saved)

	log.Println("[INFO] Setting up PaymentRoutes...")
	routeDetails.PaymentRoutes(app, guard, deps.Payments, deps.Intents)
}
