package service

import (
	"testing"

	apperror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestValidateTransfer(t *testing.T) {
	tests := []struct {
		name  string
		input dto.TransferInput
		want  error
	}{
		{"valid", dto.TransferInput{FromUserID: "LBK001234", ToUserID: "LBK002345", Amount: amount("100")}, nil},
		{"fractional amount", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("0.01")}, nil},
		{"missing from", dto.TransferInput{ToUserID: "b", Amount: amount("1")}, apperror.ErrMissingFields},
		{"missing to", dto.TransferInput{FromUserID: "a", Amount: amount("1")}, apperror.ErrMissingFields},
		{"missing amount", dto.TransferInput{FromUserID: "a", ToUserID: "b"}, apperror.ErrMissingFields},
		{"blank from", dto.TransferInput{FromUserID: "  ", ToUserID: "b", Amount: amount("1")}, apperror.ErrMissingFields},
		{"zero amount", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("0")}, apperror.ErrInvalidAmount},
		{"negative amount", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("-5")}, apperror.ErrInvalidAmount},
		{"largest integer part", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("99999999999999999999")}, nil},
		{"finest scale", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("0.000000000000000001")}, nil},
		{"integer part too long", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("100000000000000000000")}, apperror.ErrInvalidAmount},
		{"huge exponent", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("1e50000000")}, apperror.ErrInvalidAmount},
		{"too many fractional digits", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("0.0000000000000000001")}, apperror.ErrInvalidAmount},
		{"tiny negative exponent", dto.TransferInput{FromUserID: "a", ToUserID: "b", Amount: amount("1e-50000000")}, apperror.ErrInvalidAmount},
		{"self transfer", dto.TransferInput{FromUserID: "a", ToUserID: "a", Amount: amount("1")}, apperror.ErrSelfTransfer},
		{"missing wins over amount", dto.TransferInput{FromUserID: "", ToUserID: "b", Amount: amount("-1")}, apperror.ErrMissingFields},
		{"amount wins over self", dto.TransferInput{FromUserID: "a", ToUserID: "a", Amount: amount("0")}, apperror.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransfer(tt.input)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
