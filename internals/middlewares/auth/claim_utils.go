// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "flc_backend/internals/features/users/auth/service"
)

const claimsLocalKey = "auth_claims"

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", fmt.Errorf("no token provided")
	}

	// toleransi spasi ganda & case-insensitive scheme
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("invalid token format")
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("empty token")
	}
	return tok, nil
}

/* ======== Locals ======== */

// ClaimsFromCtx returns the claims the guard verified for this request.
func ClaimsFromCtx(c *fiber.Ctx) (authService.Claims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(authService.Claims)
	return claims, ok
}

// EmailFromCtx is the verified email claim, "" for unauthenticated requests.
func EmailFromCtx(c *fiber.Ctx) string {
	claims, ok := ClaimsFromCtx(c)
	if !ok {
		return ""
	}
	return claims.Email()
}
