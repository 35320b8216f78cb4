// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/constants"
	authService "flc_backend/internals/features/users/auth/service"
	userModel "flc_backend/internals/features/users/user/model"
	helper "flc_backend/internals/helpers"
)

type TokenVerifier interface {
	Verify(token string) (authService.Claims, error)
}

// UserFinder returns nil, nil when no user has the email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
}

// Guard evaluates route policies: token first, stored role second.
type Guard struct {
	tokens TokenVerifier
	users  UserFinder
}

func NewGuard(tokens TokenVerifier, users UserFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

func (g *Guard) Require(p Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !p.Authenticated {
			return c.Next()
		}

		// 1) Bearer token
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}

		// 2) Signature + exp
		claims, err := g.tokens.Verify(tokenString)
		if err != nil {
			log.Printf("[WARN] %s %s rejected: %v", c.Method(), c.Path(), err)
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}
		c.Locals(claimsLocalKey, claims)

		if p.Role == "" {
			return c.Next()
		}

		// 3) Stored role of the verified email; a missing user is a mismatch
		allowed, err := g.hasRole(c.UserContext(), claims.Email(), p.Role)
		if err != nil {
			return fmt.Errorf("role check %s: %w", p, err)
		}
		if !allowed {
			return helper.JsonError(c, fiber.StatusForbidden, constants.MsgForbidden)
		}
		return c.Next()
	}
}

func (g *Guard) hasRole(ctx context.Context, email, role string) (bool, error) {
	if email == "" {
		return false, nil
	}
	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.HasRole(role), nil
}
