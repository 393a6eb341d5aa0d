package trading

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Quote computes the amount behind a percentage-of-max button. It reads
// without locks; Buy and Sell re-validate everything when the user confirms.
func (s *Service) Quote(
	ctx context.Context,
	userID, assetID uint64,
	side entity.TradeSide,
	percent int64,
) (*entity.TradeQuote, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := entity.ValidateQuotePercent(percent); err != nil {
		return nil, err
	}

	asset, err := s.uow.GetAssetRepository(ctx).GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	var maxAmount decimal.Decimal
	switch side {
	case entity.SideBuy:
		user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		maxAmount = entity.MaxBuyAmount(user.Balance, asset.Rate, asset.AvailableSupply)
	case entity.SideSell:
		holding, err := s.uow.GetHoldingRepository(ctx).Get(ctx, userID, assetID)
		if err != nil {
			return nil, err
		}
		maxAmount = holding.Amount
	default:
		return nil, fmt.Errorf("%w: unknown side %q", errs.ErrInvalidRequest, side)
	}

	amount := entity.PercentOf(maxAmount, percent)
	return &entity.TradeQuote{
		Side:      side,
		AssetID:   asset.ID,
		Percent:   percent,
		MaxAmount: maxAmount,
		Amount:    amount,
		Rate:      asset.Rate,
		Total:     asset.Cost(amount),
	}, nil
}

// Portfolio returns the user's holdings priced at the current rates
func (s *Service) Portfolio(ctx context.Context, userID uint64) (*entity.Portfolio, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	items, err := s.uow.GetHoldingRepository(ctx).ListPortfolio(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load portfolio", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return entity.NewPortfolio(userID, items), nil
}
