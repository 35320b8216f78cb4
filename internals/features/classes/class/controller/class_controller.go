package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flc_backend/internals/constants"
	"flc_backend/internals/features/classes/class/model"
	"flc_backend/internals/features/classes/class/repository"
	helper "flc_backend/internals/helpers"
	authMiddleware "flc_backend/internals/middlewares/auth"
)

type ClassController struct {
	Classes repository.ClassRepository
}

func NewClassController(classes repository.ClassRepository) *ClassController {
	return &ClassController{Classes: classes}
}

// GET /class
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	classes, err := cc.Classes.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// GET /class/:email
func (cc *ClassController) GetInstructorClasses(c *fiber.Ctx) error {
	classes, err := cc.Classes.FindByInstructor(c.UserContext(), helper.PathParam(c, "email"))
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// GET /approvedClass
func (cc *ClassController) GetApprovedClasses(c *fiber.Ctx) error {
	classes, err := cc.Classes.FindByStatus(c.UserContext(), constants.ClassStatusApprove)
	if err != nil {
		return err
	}
	return c.JSON(classes)
}

// POST /class (instructor)
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var class model.ClassModel
	if ok, err := helper.ParseAndValidate(c, &class); !ok {
		return err
	}

	// Server-owned fields
	class.ID = primitive.NilObjectID
	class.Status = constants.ClassStatusPending
	class.Booking = 0
	class.InstructorEmail = authMiddleware.EmailFromCtx(c)

	result, err := cc.Classes.Insert(c.UserContext(), &class)
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] class %q created by %s", class.Name, class.InstructorEmail)
	return c.JSON(result)
}

// SetStatus serves PATCH /class/{approve|deny}/:id
func (cc *ClassController) SetStatus(status string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.ParseObjectID(c.Params("id"))
		if err != nil {
			return err
		}

		result, err := cc.Classes.SetStatus(c.UserContext(), id, status)
		if err != nil {
			return err
		}

		log.Printf("[INFO] class %s set to %s", id.Hex(), status)
		return c.JSON(result)
	}
}

// PUT /payment/:name
func (cc *ClassController) IncrementBooking(c *fiber.Ctx) error {
	name := helper.PathParam(c, "name")
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class name is required")
	}

	result, err := cc.Classes.IncrementBooking(c.UserContext(), name)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
