package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flc_backend/internals/configs"
)

func TestSetupMiddlewares_NoRequestDeadline(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app, &configs.Config{CorsOrigins: "*"}, nil)
	app.Get("/x", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(c.Locals("reqid").(string))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))
}
