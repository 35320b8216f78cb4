// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/constants"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JsonError writes {error:true, message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{Error: true, Message: message})
}

// JsonMessage writes {message} with 200, used for the "already exists" style answers.
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
// 4xx *fiber.Error messages go to the client; anything else is logged and
// answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return JsonError(c, fe.Code, fe.Message)
	}

	code := fiber.StatusInternalServerError
	if fe != nil {
		code = fe.Code
	}
	log.Printf("[ERROR] reqid=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.OriginalURL(), err)
	return JsonError(c, code, constants.MsgInternalError)
}
