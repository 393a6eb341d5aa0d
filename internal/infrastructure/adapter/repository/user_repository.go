package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// getOperationType returns "credit" for positive or zero changes and "debit" for negative changes
func getOperationType(balanceChange decimal.Decimal) string {
	if balanceChange.IsNegative() {
		return "debit"
	}
	return "credit"
}

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID: userModel.ID,
		Profile: entity.Profile{
			FirstName:  userModel.FirstName,
			LastName:   userModel.LastName,
			MiddleName: userModel.MiddleName,
			BirthDate:  userModel.BirthDate,
			Email:      userModel.Email,
			Phone:      userModel.Phone,
		},
		Balance:   userModel.Balance.Decimal,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	mapped := r.errorMapper.MapError(err, EntityTypeUser, operation)

	if errors.Is(mapped, errs.ErrUserNotFound) {
		r.logger.Debug("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
		return mapped
	}

	r.logger.Error("Database error on users", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("get", err, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByIDForUpdate retrieves a user and holds its row lock until the unit of work ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("lock", result.Error, id)
	}

	r.logger.Debug("User row locked", map[string]any{
		"user_id": id,
		"balance": userModel.Balance.String(),
	})
	return r.modelToEntity(&userModel), nil
}

// FindByEmail returns the user registered with email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("find by email", err, 0)
	}
	return r.modelToEntity(&userModel), nil
}

// Create stores a newly registered user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:         user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		MiddleName: user.MiddleName,
		BirthDate:  user.BirthDate,
		Email:      user.Email,
		Phone:      user.Phone,
		Balance:    model.NewAmount(user.Balance),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("create", err, user.ID)
	}

	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
		"balance": user.FormattedBalance(),
	})
	return nil
}

// DebitBalance subtracts amount in one conditional update guarded by the committed balance
func (r *UserRepository) DebitBalance(ctx context.Context, id uint64, amount decimal.Decimal) error {
	debited, err := amountChange{
		table:  "users",
		column: "balance",
		delta:  amount.Neg(),
		floor:  true,
		set:    map[string]any{"updated_at": r.timeProvider.Now()},
	}.apply(r.db.WithContext(ctx), "id = ?", id)
	if err != nil {
		return r.handleDatabaseError("debit", err, id)
	}

	if !debited {
		user, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		r.logger.Warn("Insufficient balance for debit", map[string]any{
			"user_id":          id,
			"current_balance":  user.Balance.String(),
			"requested_change": amount.String(),
		})
		return errs.NewInsufficientBalanceError(id, amount.String(), user.Balance.String())
	}

	r.logger.Debug("Balance debited", map[string]any{
		"user_id": id,
		"amount":  amount.String(),
	})
	return nil
}

// AdjustBalance adds delta to the balance with a relative update
func (r *UserRepository) AdjustBalance(ctx context.Context, id uint64, delta decimal.Decimal) error {
	adjusted, err := amountChange{
		table:  "users",
		column: "balance",
		delta:  delta,
		set:    map[string]any{"updated_at": r.timeProvider.Now()},
	}.apply(r.db.WithContext(ctx), "id = ?", id)
	if err != nil {
		return r.handleDatabaseError("adjust balance", err, id)
	}

	if !adjusted {
		r.logger.Warn("User not found during balance adjustment", map[string]any{
			"user_id": id,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"user_id":        id,
		"balance_change": delta.String(),
		"operation_type": getOperationType(delta),
	})
	return nil
}
