package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// Transaction is one immutable value movement between two user identifiers.
type Transaction struct {
	ID         int64
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// DirectionFor reports whether the transaction was sent or received from userID's point of view.
func (t Transaction) DirectionFor(userID string) string {
	if t.FromUserID == userID {
		return DirectionSent
	}
	return DirectionReceived
}
