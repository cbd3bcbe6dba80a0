package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route to the given roles. Must run after Protected.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := Session(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No session",
			})
		}
		for _, r := range roles {
			if session.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role",
		})
	}
}
