package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	repo "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/repository/postgres"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txColumns = []string{"id", "from_user_id", "to_user_id", "amount", "created_at"}

func TestSave(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		tx := &domain.Transaction{FromUserID: "a", ToUserID: "b", Amount: decimal.RequireFromString("100.25"), CreatedAt: at}
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs("a", "b", "100.25", at).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		require.NoError(t, r.Save(ctx, tx))
		assert.Equal(t, int64(1), tx.ID)
	})

	t.Run("database error", func(t *testing.T) {
		tx := &domain.Transaction{FromUserID: "a", ToUserID: "b", Amount: decimal.NewFromInt(1), CreatedAt: at}
		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs("a", "b", "1", at).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Save(ctx, tx))
		assert.Zero(t, tx.ID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindRecentByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, from_user_id, to_user_id").
			WithArgs("a", 10).
			WillReturnRows(pgxmock.NewRows(txColumns).
				AddRow(int64(2), "b", "a", "5.50", at).
				AddRow(int64(1), "a", "b", "100", at.Add(-time.Minute)))

		txs, err := r.FindRecentByUserID(ctx, "a", 10)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, int64(2), txs[0].ID)
		assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("5.5")))
		assert.Equal(t, "a", txs[1].FromUserID)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, from_user_id, to_user_id").
			WithArgs("nobody", 10).
			WillReturnRows(pgxmock.NewRows(txColumns))

		txs, err := r.FindRecentByUserID(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("bad amount", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, from_user_id, to_user_id").
			WithArgs("a", 10).
			WillReturnRows(pgxmock.NewRows(txColumns).AddRow(int64(3), "a", "b", "NaN?", at))

		_, err := r.FindRecentByUserID(ctx, "a", 10)
		assert.Error(t, err)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, from_user_id, to_user_id").
			WithArgs("a", 10).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.FindRecentByUserID(ctx, "a", 10)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
