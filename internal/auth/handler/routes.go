package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, h *AuthHandler) {
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/me", h.RequireAuth(), h.Me)
}
