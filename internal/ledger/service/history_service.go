package service

import (
	"context"

	apperror "github.com/AnthoniusHendriyanto/ledger-service/internal/errors"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/domain"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/ledger/dto"
	"github.com/AnthoniusHendriyanto/ledger-service/internal/logging"
)

// HistoryLimit caps how many transactions RecentFor returns.
const HistoryLimit = 10

type HistoryService struct {
	repo   domain.TransactionRepository
	logger logging.Logger
}

func NewHistoryService(repo domain.TransactionRepository, logger logging.Logger) *HistoryService {
	return &HistoryService{repo: repo, logger: logger}
}

// RecentFor returns userID's most recent transactions, newest first, each marked
// sent or received from userID's side. No transactions is not an error.
func (s *HistoryService) RecentFor(ctx context.Context, userID string) (*dto.History, error) {
	txs, err := s.repo.FindRecentByUserID(ctx, userID, HistoryLimit)
	if err != nil {
		s.logger.Error(ctx, "history query failed", "user_id", userID, "error", err)
		return nil, apperror.Wrap(apperror.ErrHistoryFailed, err)
	}

	annotated := make([]dto.AnnotatedTransaction, 0, len(txs))
	for _, tx := range txs {
		annotated = append(annotated, dto.AnnotatedTransaction{
			ID:         tx.ID,
			FromUserID: tx.FromUserID,
			ToUserID:   tx.ToUserID,
			Amount:     dto.AmountNumber(tx.Amount),
			CreatedAt:  dto.FormatTimestamp(tx.CreatedAt),
			Type:       tx.DirectionFor(userID),
		})
	}

	return &dto.History{
		UserID:       userID,
		Transactions: annotated,
		Count:        len(annotated),
	}, nil
}
