package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app fiber.Router, h *LedgerHandler) {
	app.Post("/transfer", h.Transfer)
	app.Get("/transactions/recent/:userId", h.RecentTransactions)
}
