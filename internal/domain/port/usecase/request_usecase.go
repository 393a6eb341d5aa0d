package usecase

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// RequestUseCase drives deposit/withdraw requests through the approval workflow
type RequestUseCase interface {
	// Create opens a pending deposit or withdraw request; amount is a decimal string
	Create(ctx context.Context, userID uint64, kind entity.TransactionKind, amount string) (*entity.Transaction, error)

	// Resolve applies an admin decision exactly once; a request already out of
	// pending yields ErrAlreadyProcessed
	Resolve(ctx context.Context, actorID, requestID uint64, decision entity.Decision) (*entity.ResolveResult, error)

	// SweepCancel cancels every pending request and returns how many were cancelled
	SweepCancel(ctx context.Context) (int64, error)

	ListPending(ctx context.Context, actorID uint64) ([]entity.RequestView, error)
	ListRecent(ctx context.Context, actorID uint64, limit int) ([]entity.RequestView, error)
	ListForUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error)
	PendingCount(ctx context.Context) (int64, error)
}
