package persistence

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AssetRepository defines the storage operations of the asset registry
type AssetRepository interface {
	// GetByID retrieves an asset
	//
	// Possible errors:
	// - ErrAssetNotFound: If the asset doesn't exist
	// - ErrStorage: If the query fails
	GetByID(ctx context.Context, id uint64) (*entity.Asset, error)

	// GetByIDForUpdate retrieves an asset and locks its row for the rest of the unit of work
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.Asset, error)

	// List returns every asset ordered by name
	List(ctx context.Context) ([]*entity.Asset, error)

	// ExistsByNameOrSymbol reports whether name or symbol is already listed
	ExistsByNameOrSymbol(ctx context.Context, name, symbol string) (bool, error)

	// Create stores a new asset and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateAsset: If name or symbol is taken
	// - ErrStorage: If the insert fails
	Create(ctx context.Context, asset *entity.Asset) error

	// Update persists rate, total supply and available supply of an admin edit
	Update(ctx context.Context, asset *entity.Asset) error

	// DecreaseAvailableSupply subtracts amount from the available supply when the
	// committed supply covers it.
	//
	// Possible errors:
	// - ErrInsufficientSupply: If the available supply is lower than amount
	// - ErrStorage: If the update fails
	DecreaseAvailableSupply(ctx context.Context, id uint64, amount decimal.Decimal) error

	// IncreaseAvailableSupply returns amount to the pool
	IncreaseAvailableSupply(ctx context.Context, id uint64, amount decimal.Decimal) error
}
