package usecase

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// RegisterUserRequest is the data collected by the registration dialog
type RegisterUserRequest struct {
	UserID uint64
	entity.Profile
}

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// Register creates the user with the signup bonus
	Register(ctx context.Context, req RegisterUserRequest) (*entity.User, error)

	// GetUser returns the registered user
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)
}
