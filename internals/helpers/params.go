package helper

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// PathParam returns the unescaped route parameter ("a%40b.com" -> "a@b.com").
func PathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return strings.TrimSpace(raw)
}
