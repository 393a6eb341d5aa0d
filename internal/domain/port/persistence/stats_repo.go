package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// StatsRepository runs the aggregate queries behind the admin dashboard
type StatsRepository interface {
	UserStats(ctx context.Context, dayStart, weekStart time.Time) (entity.UserStats, error)
	TradingStats(ctx context.Context, since time.Time) (entity.TradingStats, error)
	TopAssets(ctx context.Context, limit int) ([]entity.AssetStats, error)
}
