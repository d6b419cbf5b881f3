package handler

import (
	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "user"

// RequireAuth resolves the Authorization header to a user and stores it in Locals.
// Any failure ends the request with 401.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := h.gateway.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
}
