package persistence

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// HoldingRepository stores portfolio entries keyed on (user, asset)
type HoldingRepository interface {
	// GetForUpdate returns the holding and locks it for the rest of the unit of work
	//
	// Possible errors:
	// - ErrNoHolding: If the user holds none of the asset
	// - ErrStorage: If the query fails
	GetForUpdate(ctx context.Context, userID, assetID uint64) (*entity.Holding, error)

	// Get returns the holding without locking; a missing row yields ErrNoHolding
	Get(ctx context.Context, userID, assetID uint64) (*entity.Holding, error)

	// Add creates the holding with amount or increments an existing one in a single upsert
	Add(ctx context.Context, userID, assetID uint64, amount decimal.Decimal) error

	// Reduce subtracts amount when the committed holding covers it
	//
	// Possible errors:
	// - ErrInsufficientHolding: If less than amount is held
	// - ErrStorage: If the update fails
	Reduce(ctx context.Context, userID, assetID uint64, amount decimal.Decimal) error

	// Delete removes the holding row
	Delete(ctx context.Context, userID, assetID uint64) error

	// ListPortfolio returns the user's positive holdings joined with asset name, symbol and rate
	ListPortfolio(ctx context.Context, userID uint64) ([]entity.PortfolioItem, error)
}
