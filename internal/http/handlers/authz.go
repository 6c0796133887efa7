package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "gnstore/internal/log"
)

// RequireAdminToken guards the admin routes. The config carries only a
// bcrypt hash of the token; an empty hash disables the routes entirely.
func RequireAdminToken(tokenHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == "" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		token := c.Get("X-Admin-Token")
		if token == "" {
			applog.Security(c, "admin.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing admin token"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)); err != nil {
			applog.Security(c, "admin.token.reject", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid admin token"})
		}
		return c.Next()
	}
}
