package handler

import (
	"errors"

	apperror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/dto"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/service"
	"github.com/gofiber/fiber/v2"
)

const noTransactionsMessage = "No transactions found for user"

type LedgerHandler struct {
	transfers *service.TransferService
	history   *service.HistoryService
}

func NewLedgerHandler(transfers *service.TransferService, history *service.HistoryService) *LedgerHandler {
	return &LedgerHandler{transfers: transfers, history: history}
}

func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var input dto.TransferInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Transfer failed: "+err.Error())
	}

	result, err := h.transfers.Execute(c.UserContext(), input)
	if err != nil {
		return badRequest(c, transferMessage(err))
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *LedgerHandler) RecentTransactions(c *fiber.Ctx) error {
	history, err := h.history.RecentFor(c.UserContext(), c.Params("userId"))
	if err != nil {
		return badRequest(c, "Failed to retrieve transactions: "+causeOf(err))
	}

	if history.Empty() {
		return c.Status(fiber.StatusOK).JSON(dto.EmptyHistory{
			Message:      noTransactionsMessage,
			Transactions: []dto.AnnotatedTransaction{},
		})
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func transferMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, apperror.ErrInvalidAmount):
		return "Invalid transfer amount"
	case errors.Is(err, apperror.ErrSelfTransfer):
		return "Cannot transfer to the same user"
	default:
		return "Transfer failed: " + causeOf(err)
	}
}

// causeOf strips the operation prefix from a wrapped store failure.
func causeOf(err error) string {
	var opErr *apperror.OpError
	if errors.As(err, &opErr) {
		return opErr.Cause.Error()
	}
	return err.Error()
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
