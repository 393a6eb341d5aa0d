package request

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
)

// SweepCancel moves every request still pending to cancelled. It runs on
// shutdown so no stale approve/reject affordance survives a restart.
func (s *Service) SweepCancel(ctx context.Context) (int64, error) {
	cancelled, err := s.uow.GetTransactionRepository(ctx).CancelAllPending(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Failed to cancel pending requests", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}

	s.logger.Info("Pending requests cancelled", map[string]any{
		"count": cancelled,
	})

	if cancelled > 0 {
		s.publish(ctx, coreport.EventRequestCancelled, 0, map[string]any{
			"count": cancelled,
		})
	}

	return cancelled, nil
}

// ListPending returns the requests awaiting a decision
func (s *Service) ListPending(ctx context.Context, actorID uint64) ([]entity.RequestView, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		return nil, errs.ErrForbidden
	}
	return s.uow.GetTransactionRepository(ctx).ListPending(ctx)
}

// ListRecent returns the latest transactions of any kind
func (s *Service) ListRecent(ctx context.Context, actorID uint64, limit int) ([]entity.RequestView, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		return nil, errs.ErrForbidden
	}
	return s.uow.GetTransactionRepository(ctx).ListRecent(ctx, normalizeLimit(limit))
}

// ListForUser returns one user's transaction history
func (s *Service) ListForUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).ListByUser(ctx, userID, normalizeLimit(limit))
}

// PendingCount returns how many requests await a decision
func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.uow.GetTransactionRepository(ctx).CountPending(ctx)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
