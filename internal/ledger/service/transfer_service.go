package service

import (
	"context"
	"time"

	apperror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/dto"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/metrics"
)

const transferSuccessMessage = "Transfer successful"

type TransferService struct {
	repo   domain.TransactionRepository
	clock  func() time.Time
	logger logging.Logger
}

func NewTransferService(repo domain.TransactionRepository, clock func() time.Time, logger logging.Logger) *TransferService {
	if clock == nil {
		clock = NewMonotonicClock(time.Now)
	}
	return &TransferService{repo: repo, clock: clock, logger: logger}
}

// Execute validates input and records exactly one transaction. It is not retried on failure.
func (s *TransferService) Execute(ctx context.Context, input dto.TransferInput) (*dto.TransferResult, error) {
	if err := ValidateTransfer(input); err != nil {
		metrics.RecordTransfer(metrics.TransferRejected)
		s.logger.Info(ctx, "transfer rejected", "reason", err.Error())
		return nil, err
	}

	tx := &domain.Transaction{
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Amount:     input.Amount.Decimal,
		CreatedAt:  s.clock(),
	}

	if err := s.repo.Save(ctx, tx); err != nil {
		metrics.RecordTransfer(metrics.TransferFailed)
		s.logger.Error(ctx, "transfer failed", "from_user_id", tx.FromUserID, "to_user_id", tx.ToUserID, "error", err)
		return nil, apperror.Wrap(apperror.ErrTransferFailed, err)
	}

	metrics.RecordTransfer(metrics.TransferOK)
	s.logger.Info(ctx, "transfer recorded", "transaction_id", tx.ID, "from_user_id", tx.FromUserID, "to_user_id", tx.ToUserID)

	return &dto.TransferResult{
		Message:       transferSuccessMessage,
		TransactionID: tx.ID,
		FromUserID:    tx.FromUserID,
		ToUserID:      tx.ToUserID,
		Amount:        dto.AmountNumber(tx.Amount),
		CreatedAt:     dto.FormatTimestamp(tx.CreatedAt),
	}, nil
}
