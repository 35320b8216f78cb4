package route

import (
	"github.com/gofiber/fiber/v2"

	paymentController "flc_backend/internals/features/payment/payments/controller"
	"flc_backend/internals/features/payment/payments/repository"
	"flc_backend/internals/middlewares/auth"
)

func PaymentRoutes(app fiber.Router, guard *auth.Guard, payments repository.PaymentRepository, intents paymentController.IntentCreator) {
	ctrl := paymentController.NewPaymentController(payments, intents)
	authenticated := guard.Require(auth.Authenticated)
	public := guard.Require(auth.Public)

	app.Post("/create-payment-intent", authenticated, ctrl.CreatePaymentIntent)
	app.Post("/payments/:id", authenticated, ctrl.RecordPayment)
	app.Get("/payment/:email", public, ctrl.GetStudentPayments)
	app.Get("/history/:email", public, ctrl.GetHistory)
	app.Get("/history/:email/export", authenticated, ctrl.ExportHistory)
}
