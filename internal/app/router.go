package app

import (
	"time"

	authhandler "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/handler"
	ledgerhandler "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/handler"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func NewRouter(auth *authhandler.AuthHandler, ledger *ledgerhandler.LedgerHandler, logger logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "ledger-service",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           120 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(logger))
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	authhandler.RegisterRoutes(app, auth)
	ledgerhandler.RegisterRoutes(app, ledger)

	return app
}

func requestLogger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		}
		if err != nil {
			logger.Error(c.UserContext(), "request failed", append(args, "error", err)...)
			return err
		}
		logger.Debug(c.UserContext(), "request handled", args...)
		return nil
	}
}
