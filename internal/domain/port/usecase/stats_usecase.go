package usecase

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// StatsUseCase builds the admin dashboard
type StatsUseCase interface {
	Snapshot(ctx context.Context, actorID uint64) (*entity.ExchangeStats, error)
}
