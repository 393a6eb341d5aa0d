package usecase

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// CreateAssetRequest carries a new listing; numeric fields are decimal strings
type CreateAssetRequest struct {
	Name        string
	Symbol      string
	Rate        string
	TotalSupply string
}

// UpdateAssetRequest carries an admin edit; nil fields are left unchanged
type UpdateAssetRequest struct {
	Rate            *string
	TotalSupply     *string
	AvailableSupply *string
}

// AssetUseCase manages the catalog of tradable assets
type AssetUseCase interface {
	Get(ctx context.Context, assetID uint64, includePrivate bool) (*entity.AssetView, error)
	List(ctx context.Context, includePrivate bool) ([]entity.AssetView, error)
	Create(ctx context.Context, actorID uint64, req CreateAssetRequest) (*entity.Asset, error)
	Update(ctx context.Context, actorID, assetID uint64, req UpdateAssetRequest) (*entity.Asset, error)
	PriceHistory(ctx context.Context, assetID uint64, days int) ([]entity.PriceHistoryPoint, error)
}
