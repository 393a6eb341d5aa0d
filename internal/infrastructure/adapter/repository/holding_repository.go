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

// HoldingRepository implements HoldingRepository interface using GORM
type HoldingRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewHoldingRepository creates a new HoldingRepository instance
func NewHoldingRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *HoldingRepository {
	return &HoldingRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

// portfolioRow is one holding joined with its asset
type portfolioRow struct {
	AssetID uint64
	Name    string
	Symbol  string
	Amount  decimal.Decimal
	Rate    decimal.Decimal
}

func (r *HoldingRepository) handleDatabaseError(operation string, err error, userID, assetID uint64) error {
	mapped := r.errorMapper.MapError(err, EntityTypeHolding, operation)
	if errors.Is(mapped, errs.ErrNoHolding) {
		return mapped
	}

	r.logger.Error("Database error on holdings", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"asset_id":  assetID,
		"error":     err.Error(),
	})
	return mapped
}

func (r *HoldingRepository) find(ctx context.Context, userID, assetID uint64, lock bool) (*entity.Holding, error) {
	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var holdingModel model.Holding
	result := query.Where("user_id = ? AND asset_id = ?", userID, assetID).First(&holdingModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get", result.Error, userID, assetID)
	}

	return &entity.Holding{
		UserID:    holdingModel.UserID,
		AssetID:   holdingModel.AssetID,
		Amount:    holdingModel.Amount.Decimal,
		UpdatedAt: holdingModel.UpdatedAt,
	}, nil
}

// GetForUpdate returns the holding and locks it
func (r *HoldingRepository) GetForUpdate(ctx context.Context, userID, assetID uint64) (*entity.Holding, error) {
	return r.find(ctx, userID, assetID, true)
}

// Get returns the holding without locking
func (r *HoldingRepository) Get(ctx context.Context, userID, assetID uint64) (*entity.Holding, error) {
	return r.find(ctx, userID, assetID, false)
}

// Add creates the holding or increments it with a single upsert keyed on (user_id, asset_id)
func (r *HoldingRepository) Add(ctx context.Context, userID, assetID uint64, amount decimal.Decimal) error {
	db := r.db.WithContext(ctx)
	now := r.timeProvider.Now()
	holdingModel := model.Holding{
		UserID:    userID,
		AssetID:   assetID,
		Amount:    model.NewAmount(amount),
		UpdatedAt: now,
	}

	if textAmounts(db) {
		added, err := amountChange{
			table:  "holdings",
			column: "amount",
			delta:  amount,
			set:    map[string]any{"updated_at": now},
		}.apply(db, "user_id = ? AND asset_id = ?", userID, assetID)
		if err != nil {
			return r.handleDatabaseError("add", err, userID, assetID)
		}
		if added {
			return nil
		}
		if err := db.Omit(clause.Associations).Create(&holdingModel).Error; err != nil {
			return r.handleDatabaseError("add", err, userID, assetID)
		}
		return nil
	}

	result := db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "asset_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"amount":     gorm.Expr("holdings.amount + excluded.amount"),
				"updated_at": now,
			}),
		}).
		Create(&holdingModel)
	if result.Error != nil {
		return r.handleDatabaseError("add", result.Error, userID, assetID)
	}
	return nil
}

// Reduce subtracts amount in one conditional update guarded by the committed holding
func (r *HoldingRepository) Reduce(ctx context.Context, userID, assetID uint64, amount decimal.Decimal) error {
	reduced, err := amountChange{
		table:  "holdings",
		column: "amount",
		delta:  amount.Neg(),
		floor:  true,
		set:    map[string]any{"updated_at": r.timeProvider.Now()},
	}.apply(r.db.WithContext(ctx), "user_id = ? AND asset_id = ?", userID, assetID)
	if err != nil {
		return r.handleDatabaseError("reduce", err, userID, assetID)
	}

	if !reduced {
		if _, err := r.Get(ctx, userID, assetID); err != nil {
			return err
		}
		return errs.ErrInsufficientHolding
	}
	return nil
}

// Delete removes the holding row
func (r *HoldingRepository) Delete(ctx context.Context, userID, assetID uint64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		Delete(&model.Holding{})
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, userID, assetID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNoHolding
	}
	return nil
}

// ListPortfolio returns the user's positive holdings with asset name, symbol and rate
func (r *HoldingRepository) ListPortfolio(ctx context.Context, userID uint64) ([]entity.PortfolioItem, error) {
	var rows []portfolioRow
	result := r.db.WithContext(ctx).
		Table("holdings").
		Select("holdings.asset_id, assets.name, assets.symbol, holdings.amount, assets.rate").
		Joins("JOIN assets ON assets.id = holdings.asset_id").
		Where("holdings.user_id = ? AND holdings.amount > 0", userID).
		Order("assets.name").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("list portfolio", result.Error, userID, 0)
	}

	items := make([]entity.PortfolioItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.PortfolioItem{
			AssetID: row.AssetID,
			Name:    row.Name,
			Symbol:  row.Symbol,
			Amount:  row.Amount,
			Rate:    row.Rate,
		})
	}
	return items, nil
}
