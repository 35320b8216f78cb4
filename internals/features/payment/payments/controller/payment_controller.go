package controller

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flc_backend/internals/constants"
	"flc_backend/internals/features/payment/payments/dto"
	"flc_backend/internals/features/payment/payments/model"
	"flc_backend/internals/features/payment/payments/repository"
	"flc_backend/internals/features/payment/payments/service"
	helper "flc_backend/internals/helpers"
)

type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type PaymentController struct {
	Payments repository.PaymentRepository
	Intents  IntentCreator
	Now      func() time.Time
}

func NewPaymentController(payments repository.PaymentRepository, intents IntentCreator) *PaymentController {
	return &PaymentController{Payments: payments, Intents: intents, Now: time.Now}
}

// POST /create-payment-intent
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	secret, err := pc.Intents.CreateIntent(c.UserContext(), req.Price)
	if err != nil {
		return fmt.Errorf("create payment intent: %w", err)
	}
	return c.JSON(dto.CreateIntentResponse{ClientSecret: secret})
}

// POST /payments/:id, where :id is the saved class being settled
func (pc *PaymentController) RecordPayment(c *fiber.Ctx) error {
	savedID, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return err
	}

	var payment model.PaymentModel
	if ok, err := helper.ParseAndValidate(c, &payment); !ok {
		return err
	}
	payment.ID = primitive.NilObjectID
	payment.CreateAt = pc.Now().UTC()

	inserted, deleted, err := pc.Payments.RecordPayment(c.UserContext(), savedID, &payment)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] payment %s recorded for %s, saved class %s removed (%d)",
		payment.TransactionID, payment.StudentEmail, savedID.Hex(), deleted.DeletedCount)
	return c.JSON(dto.RecordPaymentResponse{InsertResult: inserted, DeleteResult: deleted})
}

// GET /payment/:email
func (pc *PaymentController) GetStudentPayments(c *fiber.Ctx) error {
	payments, err := pc.Payments.FindByStudent(c.UserContext(), helper.PathParam(c, "email"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

// GET /history/:email
func (pc *PaymentController) GetHistory(c *fiber.Ctx) error {
	payments, err := pc.Payments.History(c.UserContext(), helper.PathParam(c, "email"))
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

// GET /history/:email/export
func (pc *PaymentController) ExportHistory(c *fiber.Ctx) error {
	email := helper.PathParam(c, "email")
	payments, err := pc.Payments.History(c.UserContext(), email)
	if err != nil {
		return err
	}

	buf, err := service.BuildHistoryWorkbook(payments)
	if err != nil {
		return fmt.Errorf("export history: %w", err)
	}

	c.Set(fiber.HeaderContentType, constants.MimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="history-%s.xlsx"`, url.PathEscape(email)))
	return c.Send(buf.Bytes())
}
