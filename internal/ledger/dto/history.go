package dto

import "encoding/json"

type AnnotatedTransaction struct {
	ID         int64       `json:"id"`
	FromUserID string      `json:"fromUserId"`
	ToUserID   string      `json:"toUserId"`
	Amount     json.Number `json:"amount"`
	CreatedAt  string      `json:"createdAt"`
	Type       string      `json:"type"`
}

type History struct {
	UserID       string                 `json:"userId"`
	Transactions []AnnotatedTransaction `json:"transactions"`
	Count        int                    `json:"count"`
}

// Empty reports whether the user has no recorded transactions.
func (h *History) Empty() bool {
	return h.Count == 0
}

type EmptyHistory struct {
	Message      string                 `json:"message"`
	Transactions []AnnotatedTransaction `json:"transactions"`
}
