package handler

import (
	"errors"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	gateway     *service.AuthGateway
	logger      logging.Logger
}

func NewAuthHandler(userService *service.UserService, gateway *service.AuthGateway, logger logging.Logger) *AuthHandler {
	return &AuthHandler{userService: userService, gateway: gateway, logger: logger}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": autherror.ErrInvalidInput.Error(),
		})
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrInvalidInput), errors.Is(err, autherror.ErrEmailAlreadyInUse):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			h.logger.Error(c.UserContext(), "register failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.RegisterOutput{
		Message: "User registered successfully",
		ID:      user.ID,
		Email:   user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": autherror.ErrInvalidInput.Error(),
		})
	}

	token, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		h.logger.Error(c.UserContext(), "login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

// Me returns the user RequireAuth resolved for this request.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals(userLocalKey).(*domain.User)
	if !ok || user == nil {
		return unauthorized(c)
	}

	return c.Status(fiber.StatusOK).JSON(dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Firstname: user.Firstname,
	})
}
