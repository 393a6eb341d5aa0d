package persistence

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStorage: If the query fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user and locks the row until the surrounding
	// unit of work ends. Outside a unit of work it behaves like GetByID.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStorage: If the query fails
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail returns the user registered with email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	// - ErrStorage: If the query fails
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create stores a newly registered user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the ID or email is already registered
	// - ErrStorage: If the insert fails
	Create(ctx context.Context, user *entity.User) error

	// DebitBalance subtracts amount from the balance if the committed balance covers it.
	// The check and the write are one conditional statement.
	//
	// Possible errors:
	// - ErrInsufficientBalance: If the balance is lower than amount
	// - ErrUserNotFound: If user doesn't exist
	// - ErrStorage: If the update fails
	DebitBalance(ctx context.Context, id uint64, amount decimal.Decimal) error

	// AdjustBalance adds delta (which may be negative) to the balance without a floor
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrStorage: If the update fails
	AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) error
}
