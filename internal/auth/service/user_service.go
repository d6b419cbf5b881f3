package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	credentials  CredentialVerifier
	logger       logging.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, credentials CredentialVerifier, logger logging.Logger) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		credentials:  credentials,
		logger:       logger,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.Firstname) == "" {
		return nil, autherror.ErrInvalidInput
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	stored, err := s.credentials.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:     input.Email,
		Password:  stored,
		Firstname: input.Firstname,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !s.credentials.Matches(user.Password, input.Password) {
		s.logger.Info(ctx, "login rejected")
		return nil, autherror.ErrInvalidCredentials
	}

	token, _, err := s.tokenService.Issue(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.TokenResponse{Token: token}, nil
}
