package usecase

import (
	"context"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// TradeRequest is a buy or sell of Amount units of an asset; Amount is a decimal string
type TradeRequest struct {
	UserID  uint64
	AssetID uint64
	Amount  string
}

// TradingUseCase executes trades against the pooled asset supply
type TradingUseCase interface {
	// Buy debits the balance and the asset's available supply and credits the holding, atomically
	Buy(ctx context.Context, req TradeRequest) (*entity.TradeResult, error)

	// Sell credits the balance and the supply, reduces the holding and records the sale, atomically
	Sell(ctx context.Context, req TradeRequest) (*entity.TradeResult, error)

	// Quote computes the advisory amount for a percentage-of-max choice
	Quote(ctx context.Context, userID, assetID uint64, side entity.TradeSide, percent int64) (*entity.TradeQuote, error)

	// Portfolio returns the user's holdings priced at current rates
	Portfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error)
}
