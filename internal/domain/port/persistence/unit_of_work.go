package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back on error or panic.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetAssetRepository returns an asset repository bound to the current transaction
	GetAssetRepository(ctx context.Context) AssetRepository

	// GetHoldingRepository returns a holding repository bound to the current transaction
	GetHoldingRepository(ctx context.Context) HoldingRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetPriceHistoryRepository returns a price history repository bound to the current transaction
	GetPriceHistoryRepository(ctx context.Context) PriceHistoryRepository
}
