package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// PriceHistoryRepository is the append-only log of asset rates
type PriceHistoryRepository interface {
	Append(ctx context.Context, point *entity.PriceHistoryPoint) error

	// ListSince returns the asset's points created at or after since, oldest first
	ListSince(ctx context.Context, assetID uint64, since time.Time) ([]entity.PriceHistoryPoint, error)
}
