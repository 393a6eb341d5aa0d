package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// TransactionRepository stores deposit/withdraw requests and sale audit entries
type TransactionRepository interface {
	// Create saves a new transaction and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateCorrelationCode: If the unique_id is already used
	// - ErrStorage: If the insert fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a deposit or withdraw request
	//
	// Possible errors:
	// - ErrRequestNotFound: If no request has the given ID
	// - ErrStorage: If the query fails
	GetByID(ctx context.Context, id uint64) (*entity.Transaction, error)

	// TransitionStatus moves a request from one status to another only if it is
	// still in the from status. It returns false when no row matched, meaning the
	// request was resolved concurrently.
	TransitionStatus(ctx context.Context, id uint64, from, to entity.TransactionStatus, processedAt time.Time, processedBy *uint64) (bool, error)

	// CancelAllPending moves every pending request to cancelled and returns how many moved
	CancelAllPending(ctx context.Context, at time.Time) (int64, error)

	// CountPending returns the number of requests awaiting a decision
	CountPending(ctx context.Context) (int64, error)

	// ListPending returns pending requests with their owners, newest first
	ListPending(ctx context.Context) ([]entity.RequestView, error)

	// ListRecent returns the latest transactions of any kind with their owners
	ListRecent(ctx context.Context, limit int) ([]entity.RequestView, error)

	// ListByUser returns one user's transactions, newest first
	ListByUser(ctx context.Context, userID uint64, limit int) ([]entity.Transaction, error)
}
