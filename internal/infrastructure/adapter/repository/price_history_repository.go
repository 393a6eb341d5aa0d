package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PriceHistoryRepository implements PriceHistoryRepository interface using GORM
type PriceHistoryRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPriceHistoryRepository creates a new PriceHistoryRepository instance
func NewPriceHistoryRepository(db *gorm.DB, logger coreport.Logger) *PriceHistoryRepository {
	return &PriceHistoryRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Append records a rate observation
func (r *PriceHistoryRepository) Append(ctx context.Context, point *entity.PriceHistoryPoint) error {
	pointModel := model.PriceHistory{
		AssetID:   point.AssetID,
		Rate:      model.NewAmount(point.Rate),
		CreatedAt: point.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&pointModel).Error; err != nil {
		r.logger.Error("Failed to append price history", map[string]any{
			"asset_id": point.AssetID,
			"error":    err.Error(),
		})
		return r.errorMapper.MapError(err, EntityTypePriceHistory, "append")
	}

	point.ID = pointModel.ID
	return nil
}

// ListSince returns the asset's points created at or after since, oldest first
func (r *PriceHistoryRepository) ListSince(ctx context.Context, assetID uint64, since time.Time) ([]entity.PriceHistoryPoint, error) {
	var pointModels []model.PriceHistory
	result := r.db.WithContext(ctx).
		Where("asset_id = ? AND created_at >= ?", assetID, since).
		Order("created_at, id").
		Find(&pointModels)
	if result.Error != nil {
		r.logger.Error("Failed to list price history", map[string]any{
			"asset_id": assetID,
			"error":    result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypePriceHistory, "list")
	}

	points := make([]entity.PriceHistoryPoint, 0, len(pointModels))
	for _, m := range pointModels {
		points = append(points, entity.PriceHistoryPoint{
			ID:        m.ID,
			AssetID:   m.AssetID,
			Rate:      m.Rate.Decimal,
			CreatedAt: m.CreatedAt,
		})
	}
	return points, nil
}
