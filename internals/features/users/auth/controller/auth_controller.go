package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/features/users/auth/service"
	helper "flc_backend/internals/helpers"
)

type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type AuthController struct {
	Tokens TokenIssuer
}

func NewAuthController(tokens TokenIssuer) *AuthController {
	return &AuthController{Tokens: tokens}
}

// POST /jwt signs whatever claim set the client posts (normally {email}).
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var claims map[string]any
	if err := c.BodyParser(&claims); err != nil || claims == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := ac.Tokens.Issue(claims)
	if err != nil {
		return err
	}

	log.Printf("[INFO] token issued for %q", service.Claims(claims).Email())
	return c.JSON(fiber.Map{"token": token})
}
