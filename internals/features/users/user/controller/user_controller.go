package controller

import (
	"errors"
	"log"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flc_backend/internals/constants"
	"flc_backend/internals/features/users/user/model"
	"flc_backend/internals/features/users/user/repository"
	helper "flc_backend/internals/helpers"
	authMiddleware "flc_backend/internals/middlewares/auth"
)

type UserController struct {
	Users repository.UserRepository
}

func NewUserController(users repository.UserRepository) *UserController {
	return &UserController{Users: users}
}

// GET /users (admin)
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.Users.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// POST /users, idempotent by email
func (uc *UserController) Register(c *fiber.Ctx) error {
	var user model.UserModel
	if ok, err := helper.ParseAndValidate(c, &user); !ok {
		return err
	}
	user.Email = strings.TrimSpace(user.Email)
	user.ID = primitive.NilObjectID

	existing, err := uc.Users.FindByEmail(c.UserContext(), user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return helper.JsonMessage(c, constants.MsgUserRegistered)
	}

	if !slices.Contains(constants.SelfAssignableRoles, user.Role) {
		log.Printf("[WARN] register %s: requested role %q dropped", user.Email, user.Role)
		user.Role = constants.RoleNone
	}

	result, err := uc.Users.Insert(c.UserContext(), &user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return helper.JsonMessage(c, constants.MsgUserRegistered)
	}
	if err != nil {
		return err
	}

	log.Printf("[SUCCESS] user %s registered", user.Email)
	return c.JSON(result)
}

// RoleFlag serves GET /users/{admin|instructor|student}/:email.
// A caller asking about someone else's email gets the false flag without a lookup.
func (uc *UserController) RoleFlag(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := helper.PathParam(c, "email")
		if authMiddleware.EmailFromCtx(c) != email {
			return c.JSON(fiber.Map{role: false})
		}

		user, err := uc.Users.FindByEmail(c.UserContext(), email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{role: user.HasRole(role)})
	}
}

// Promote serves PATCH /users/{admin|instructor}/:id
func (uc *UserController) Promote(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.ParseObjectID(c.Params("id"))
		if err != nil {
			return err
		}

		result, err := uc.Users.SetRole(c.UserContext(), id, role)
		if err != nil {
			return err
		}

		log.Printf("[INFO] user %s promoted to %s by %q", id.Hex(), role, authMiddleware.EmailFromCtx(c))
		return c.JSON(result)
	}
}

// GET /instructor
func (uc *UserController) GetInstructors(c *fiber.Ctx) error {
	users, err := uc.Users.FindByRole(c.UserContext(), constants.RoleInstructor)
	if err != nil {
		return err
	}
	return c.JSON(users)
}
