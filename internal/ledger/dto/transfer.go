package dto

import (
	"encoding/json"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/shopspring/decimal"
)

// TimestampLayout renders local date-times without a zone, dropping a zero fraction.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// TransferInput accepts amount as a JSON number or numeric string. Empty or
// whitespace-only user ids are treated the same as absent ones.
type TransferInput struct {
	FromUserID string              `json:"fromUserId"`
	ToUserID   string              `json:"toUserId"`
	Amount     decimal.NullDecimal `json:"amount"`
}

type TransferResult struct {
	Message       string      `json:"message"`
	TransactionID int64       `json:"transactionId"`
	FromUserID    string      `json:"fromUserId"`
	ToUserID      string      `json:"toUserId"`
	Amount        json.Number `json:"amount"`
	CreatedAt     string      `json:"createdAt"`
}

func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// AmountNumber emits d as a bare JSON number with its scale intact.
func AmountNumber(d decimal.Decimal) json.Number {
	return json.Number(domain.FormatAmount(d))
}
