package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnthoniusHendriyanto/ledger-service/db"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password, firstname, created_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email), "email")
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, email, password, firstname, created_at
		FROM users
		WHERE id = $1;
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id), "id")
}

func (r *PostgresRepository) scanOne(row pgx.Row, by string) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Firstname, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", by, err)
	}
	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, firstname, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Email, user.Password, user.Firstname, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
