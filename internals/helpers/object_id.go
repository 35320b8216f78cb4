package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flc_backend/internals/constants"
)

// ParseObjectID turns a hex path/query value into an ObjectID or a 400 *fiber.Error.
func ParseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusBadRequest, constants.MsgInvalidIdentifier)
	}
	return id, nil
}
