package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
)

// Register creates a user credited with the signup bonus
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterUserRequest) (*entity.User, error) {
	// Validate the profile before touching storage
	user, err := entity.NewUser(req.UserID, req.Profile, u.signupBonus, u.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := u.UserExists(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: id %d", errs.ErrDuplicateUser, user.ID)
	}

	// Email identifies admins, so it must be unique too
	_, err = u.userRepo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email %s", errs.ErrDuplicateUser, user.Email)
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":  user.ID,
		"balance": user.FormattedBalance(),
	})

	return user, nil
}
