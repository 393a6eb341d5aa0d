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

// AssetRepository implements AssetRepository interface using GORM
type AssetRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewAssetRepository creates a new AssetRepository instance
func NewAssetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AssetRepository {
	return &AssetRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

func assetToEntity(m *model.Asset) *entity.Asset {
	return &entity.Asset{
		ID:              m.ID,
		Name:            m.Name,
		Symbol:          m.Symbol,
		Rate:            m.Rate.Decimal,
		TotalSupply:     m.TotalSupply.Decimal,
		AvailableSupply: m.AvailableSupply.Decimal,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *AssetRepository) handleDatabaseError(operation string, err error, assetID uint64) error {
	mapped := r.errorMapper.MapError(err, EntityTypeAsset, operation)
	if errors.Is(mapped, errs.ErrAssetNotFound) || errors.Is(mapped, errs.ErrDuplicateAsset) {
		return mapped
	}

	r.logger.Error("Database error on assets", map[string]any{
		"operation": operation,
		"asset_id":  assetID,
		"error":     err.Error(),
	})
	return mapped
}

// GetByID retrieves an asset
func (r *AssetRepository) GetByID(ctx context.Context, id uint64) (*entity.Asset, error) {
	var assetModel model.Asset
	if err := r.db.WithContext(ctx).First(&assetModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("get", err, id)
	}
	return assetToEntity(&assetModel), nil
}

// GetByIDForUpdate retrieves an asset and locks its row
func (r *AssetRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Asset, error) {
	var assetModel model.Asset
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&assetModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("lock", result.Error, id)
	}
	return assetToEntity(&assetModel), nil
}

// List returns every asset ordered by name
func (r *AssetRepository) List(ctx context.Context) ([]*entity.Asset, error) {
	var assetModels []model.Asset
	if err := r.db.WithContext(ctx).Order("name").Find(&assetModels).Error; err != nil {
		return nil, r.handleDatabaseError("list", err, 0)
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for i := range assetModels {
		assets = append(assets, assetToEntity(&assetModels[i]))
	}
	return assets, nil
}

// ExistsByNameOrSymbol reports whether name or symbol is already listed
func (r *AssetRepository) ExistsByNameOrSymbol(ctx context.Context, name, symbol string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Asset{}).
		Where("name = ? OR symbol = ?", name, symbol).
		Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("check existence", result.Error, 0)
	}
	return count > 0, nil
}

// Create stores a new asset and sets its ID
func (r *AssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.Asset{
		Name:            asset.Name,
		Symbol:          asset.Symbol,
		Rate:            model.NewAmount(asset.Rate),
		TotalSupply:     model.NewAmount(asset.TotalSupply),
		AvailableSupply: model.NewAmount(asset.AvailableSupply),
		CreatedAt:       asset.CreatedAt,
		UpdatedAt:       asset.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&assetModel).Error; err != nil {
		return r.handleDatabaseError("create", err, 0)
	}

	asset.ID = assetModel.ID
	return nil
}

// Update persists an admin edit
func (r *AssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	result := r.db.WithContext(ctx).Model(&model.Asset{}).
		Where("id = ?", asset.ID).
		Updates(map[string]any{
			"rate":             asset.Rate,
			"total_supply":     asset.TotalSupply,
			"available_supply": asset.AvailableSupply,
			"updated_at":       asset.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, asset.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAssetNotFound
	}
	return nil
}

// DecreaseAvailableSupply subtracts amount in one conditional update guarded by the committed supply
func (r *AssetRepository) DecreaseAvailableSupply(ctx context.Context, id uint64, amount decimal.Decimal) error {
	decreased, err := amountChange{
		table:  "assets",
		column: "available_supply",
		delta:  amount.Neg(),
		floor:  true,
		set:    map[string]any{"updated_at": r.timeProvider.Now()},
	}.apply(r.db.WithContext(ctx), "id = ?", id)
	if err != nil {
		return r.handleDatabaseError("decrease supply", err, id)
	}

	if !decreased {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		r.logger.Warn("Available supply does not cover the purchase", map[string]any{
			"asset_id": id,
			"amount":   amount.String(),
		})
		return errs.ErrInsufficientSupply
	}
	return nil
}

// IncreaseAvailableSupply returns amount to the pool. When the pool would
// exceed the total supply, which happens after an admin edit re-opened the
// full total while users still held units, the total grows with it.
func (r *AssetRepository) IncreaseAvailableSupply(ctx context.Context, id uint64, amount decimal.Decimal) error {
	db := r.db.WithContext(ctx)
	now := r.timeProvider.Now()

	var result *gorm.DB
	if textAmounts(db) {
		var assetModel model.Asset
		if err := db.First(&assetModel, id).Error; err != nil {
			return r.handleDatabaseError("increase supply", err, id)
		}
		available := assetModel.AvailableSupply.Add(amount)
		result = db.Model(&model.Asset{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"available_supply": available,
				"total_supply":     decimal.Max(assetModel.TotalSupply.Decimal, available),
				"updated_at":       now,
			})
	} else {
		result = db.Model(&model.Asset{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"available_supply": gorm.Expr("available_supply + ?", amount),
				"total_supply":     gorm.Expr("GREATEST(total_supply, available_supply + ?)", amount),
				"updated_at":       now,
			})
	}
	if result.Error != nil {
		return r.handleDatabaseError("increase supply", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAssetNotFound
	}
	return nil
}
