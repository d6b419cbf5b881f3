package service

import (
	"context"
	"strings"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
)

const bearerPrefix = "Bearer "

// AuthGateway resolves an Authorization header value to a stored user.
type AuthGateway struct {
	tokens TokenGenerator
	repo   domain.UserRepository
	logger logging.Logger
}

func NewAuthGateway(tokens TokenGenerator, repo domain.UserRepository, logger logging.Logger) *AuthGateway {
	return &AuthGateway{tokens: tokens, repo: repo, logger: logger}
}

// Resolve returns the user the bearer token belongs to. Every failure, whichever
// step it happens in, is reported as ErrUnauthorized; the step is only logged at debug.
func (g *AuthGateway) Resolve(ctx context.Context, header string) (*domain.User, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, g.deny(ctx, "missing bearer token", nil)
	}

	identity, err := g.tokens.Authenticate(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return nil, g.deny(ctx, "token rejected", err)
	}

	user, err := g.repo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, g.deny(ctx, "user lookup failed", err)
	}
	if user == nil {
		return nil, g.deny(ctx, "user not found", nil)
	}

	return user, nil
}

func (g *AuthGateway) deny(ctx context.Context, step string, cause error) error {
	if cause != nil {
		g.logger.Debug(ctx, "auth denied", "step", step, "error", cause)
	} else {
		g.logger.Debug(ctx, "auth denied", "step", step)
	}
	return autherror.ErrUnauthorized
}
