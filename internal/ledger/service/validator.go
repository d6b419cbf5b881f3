package service

import (
	"strings"

	apperror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/dto"
)

// ValidateTransfer checks input in order: presence, amount, distinct parties.
// A blank user id counts as missing. Amounts must be positive and fit
// domain.MaxAmountScale and domain.MaxAmountIntegerDigits.
func ValidateTransfer(input dto.TransferInput) error {
	if strings.TrimSpace(input.FromUserID) == "" || strings.TrimSpace(input.ToUserID) == "" || !input.Amount.Valid {
		return apperror.ErrMissingFields
	}
	if !input.Amount.Decimal.IsPositive() || !domain.AmountInRange(input.Amount.Decimal) {
		return apperror.ErrInvalidAmount
	}
	if input.FromUserID == input.ToUserID {
		return apperror.ErrSelfTransfer
	}
	return nil
}
