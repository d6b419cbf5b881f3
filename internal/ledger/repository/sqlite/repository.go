package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/shopspring/decimal"
)

// SQLiteRepository keeps amounts as decimal text and timestamps as unix nanoseconds.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (from_user_id, to_user_id, amount, created_at)
		VALUES (?, ?, ?, ?)
	`, tx.FromUserID, tx.ToUserID, domain.FormatAmount(tx.Amount), tx.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read transaction id: %w", err)
	}
	tx.ID = id
	return nil
}

func (r *SQLiteRepository) FindRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, from_user_id, to_user_id, amount, created_at
		FROM transactions
		WHERE from_user_id = ? OR to_user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			tx      domain.Transaction
			amount  string
			created int64
		)
		if err := rows.Scan(&tx.ID, &tx.FromUserID, &tx.ToUserID, &amount, &created); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid amount %q for transaction %d: %w", amount, tx.ID, err)
		}
		tx.CreatedAt = time.Unix(0, created)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	return txs, nil
}
