package details

import (
	"github.com/gofiber/fiber/v2"

	paymentController "flc_backend/internals/features/payment/payments/controller"
	paymentRepository "flc_backend/internals/features/payment/payments/repository"
	paymentRoute "flc_backend/internals/features/payment/payments/route"
	"flc_backend/internals/middlewares/auth"
)

func PaymentRoutes(app *fiber.App, guard *auth.Guard, payments paymentRepository.PaymentRepository, intents paymentController.IntentCreator) {
	paymentRoute.PaymentRoutes(app, guard, payments, intents)
}
