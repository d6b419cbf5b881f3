// Package app wires configuration, storage, services and the HTTP router together.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/config"
	"github.com/AnthoniusHendriyanto/ledger-service/db"
	authdomain "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	authhandler "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/handler"
	authpg "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/repository/postgres"
	authsqlite "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/repository/sqlite"
	authservice "github.com/AnthoniusHendriyanto/ledger-service/internal/auth/service"
	ledgerdomain "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	ledgerhandler "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/handler"
	ledgerpg "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/repository/postgres"
	ledgersqlite "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/repository/sqlite"
	ledgerservice "github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/service"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
	"github.com/gofiber/fiber/v2"
)

const sqlitePrefix = "sqlite:"

// Application holds the initialized components of the service.
type Application struct {
	Config *config.Config
	Logger logging.Logger
	HTTP   *fiber.App

	Users        authdomain.UserRepository
	Transactions ledgerdomain.TransactionRepository

	closeStore func()
}

func NewApplication(cfg *config.Config, logger logging.Logger) *Application {
	return &Application{Config: cfg, Logger: logger}
}

// Initialize opens the store selected by DB_URL, migrates it and builds the router.
func (a *Application) Initialize(ctx context.Context) error {
	if err := a.openStore(ctx); err != nil {
		return err
	}

	credentials, err := authservice.NewCredentialVerifier(a.Config.PasswordScheme)
	if err != nil {
		return fmt.Errorf("failed to configure credentials: %w", err)
	}

	tokens := authservice.NewTokenService(a.Config.JWTSecret, a.Config.TokenExpiryMin)
	userService := authservice.NewUserService(a.Users, tokens, credentials, a.Logger.With("component", "users"))
	gateway := authservice.NewAuthGateway(tokens, a.Users, a.Logger.With("component", "auth"))

	ledgerLogger := a.Logger.With("component", "ledger")
	transfers := ledgerservice.NewTransferService(a.Transactions, ledgerservice.NewMonotonicClock(time.Now), ledgerLogger)
	history := ledgerservice.NewHistoryService(a.Transactions, ledgerLogger)

	a.HTTP = NewRouter(
		authhandler.NewAuthHandler(userService, gateway, a.Logger),
		ledgerhandler.NewLedgerHandler(transfers, history),
		a.Logger,
	)
	a.Logger.Info(ctx, "application initialized", "env", a.Config.Env)
	return nil
}

func (a *Application) openStore(ctx context.Context) error {
	if dsn, ok := strings.CutPrefix(a.Config.DBURL, sqlitePrefix); ok {
		sqlDB, err := db.NewSQLite(ctx, dsn)
		if err != nil {
			return err
		}
		if err := db.RunMigrations(ctx, sqlDB, db.DialectSQLite); err != nil {
			sqlDB.Close()
			return err
		}

		a.Users = authsqlite.NewSQLiteRepository(sqlDB)
		a.Transactions = ledgersqlite.NewSQLiteRepository(sqlDB)
		a.closeStore = func() { sqlDB.Close() }
		a.Logger.Info(ctx, "using sqlite store", "dsn", dsn)
		return nil
	}

	pool, err := db.NewPostgresPool(ctx, a.Config.DBURL, a.Config.DBMaxConns)
	if err != nil {
		return err
	}
	if err := db.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	a.Users = authpg.NewPostgresRepository(pool)
	a.Transactions = ledgerpg.NewPostgresRepository(pool)
	a.closeStore = pool.Close
	a.Logger.Info(ctx, "using postgres store")
	return nil
}

// Shutdown stops the HTTP server and releases the store.
func (a *Application) Shutdown(ctx context.Context) error {
	var err error
	if a.HTTP != nil {
		if err = a.HTTP.ShutdownWithContext(ctx); err != nil {
			a.Logger.Error(ctx, "http shutdown failed", "error", err)
		}
	}
	if a.closeStore != nil {
		a.closeStore()
		a.Logger.Info(ctx, "store closed")
	}
	return err
}
