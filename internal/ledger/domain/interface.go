package domain

//go:generate mockgen -destination=../../mocks/mock_transaction_repository.go -package=mocks github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain TransactionRepository

import "context"

type TransactionRepository interface {
	// Save inserts the transaction and sets its ID.
	Save(ctx context.Context, tx *Transaction) error
	// FindRecentByUserID returns up to limit transactions sent or received by userID, newest first.
	FindRecentByUserID(ctx context.Context, userID string, limit int) ([]Transaction, error)
}
