package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, firstname, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email)
	return scanUser(row, "email")
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, firstname, created_at
		FROM users
		WHERE id = ?
	`, id)
	return scanUser(row, "id")
}

func scanUser(row *sql.Row, by string) (*domain.User, error) {
	var (
		user    domain.User
		created int64
	)
	if err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Firstname, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", by, err)
	}
	user.CreatedAt = time.Unix(0, created)
	return &user, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, password, firstname, created_at)
		VALUES (?, ?, ?, ?)
	`, user.Email, user.Password, user.Firstname, user.CreatedAt.UnixNano())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return nil
}
