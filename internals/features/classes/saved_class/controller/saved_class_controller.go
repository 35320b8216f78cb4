package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flc_backend/internals/constants"
	"flc_backend/internals/features/classes/saved_class/model"
	"flc_backend/internals/features/classes/saved_class/repository"
	helper "flc_backend/internals/helpers"
)

type SavedClassController struct {
	Saved repository.SavedClassRepository
}

func NewSavedClassController(saved repository.SavedClassRepository) *SavedClassController {
	return &SavedClassController{Saved: saved}
}

// GET /savedClass?id=<hex>, responds null when nothing matches
func (sc *SavedClassController) GetSavedClass(c *fiber.Ctx) error {
	raw := c.Query("id")
	if strings.TrimSpace(raw) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgInvalidIdentifier)
	}
	id, err := helper.ParseObjectID(raw)
	if err != nil {
		return err
	}

	saved, err := sc.Saved.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if saved == nil {
		return c.Type("json").SendString("null")
	}
	return c.JSON(saved)
}

// GET /savedClass/:email
func (sc *SavedClassController) GetStudentSavedClasses(c *fiber.Ctx) error {
	saved, err := sc.Saved.FindByStudent(c.UserContext(), helper.PathParam(c, "email"))
	if err != nil {
		return err
	}
	return c.JSON(saved)
}

// POST /savedClass, one entry per (studentEmail, name)
func (sc *SavedClassController) SaveClass(c *fiber.Ctx) error {
	var saved model.SavedClassModel
	if ok, err := helper.ParseAndValidate(c, &saved); !ok {
		return err
	}
	saved.ID = primitive.NilObjectID
	saved.StudentEmail = strings.TrimSpace(saved.StudentEmail)

	exists, err := sc.Saved.Exists(c.UserContext(), saved.Name, saved.StudentEmail)
	if err != nil {
		return err
	}
	if exists {
		return helper.JsonMessage(c, constants.MsgSavedClassExists)
	}

	result, err := sc.Saved.Insert(c.UserContext(), &saved)
	if errors.Is(err, repository.ErrDuplicateSavedClass) {
		return helper.JsonMessage(c, constants.MsgSavedClassExists)
	}
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] %s saved class %q", saved.StudentEmail, saved.Name)
	return c.JSON(result)
}
