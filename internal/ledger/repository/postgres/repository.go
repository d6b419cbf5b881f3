package postgres

import (
	"context"
	"fmt"

	"github.com/AnthoniusHendriyanto/ledger-service/db"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO transactions (from_user_id, to_user_id, amount, created_at)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id
	`, tx.FromUserID, tx.ToUserID, domain.FormatAmount(tx.Amount), tx.CreatedAt).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, from_user_id, to_user_id, amount::text, created_at
		FROM transactions
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			tx     domain.Transaction
			amount string
		)
		if err := rows.Scan(&tx.ID, &tx.FromUserID, &tx.ToUserID, &amount, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q for transaction %d: %w", amount, tx.ID, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return txs, nil
}
