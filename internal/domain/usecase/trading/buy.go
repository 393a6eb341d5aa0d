package trading

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Buy debits the user's balance by amount*rate and the asset's available
// supply by amount and credits the holding, all in one unit of work.
//
// The rate, supply and balance used for the precondition checks are read
// under row locks in the same transaction as the writes, and the writes are
// relative updates guarded by the same conditions.
func (s *Service) Buy(ctx context.Context, req usecase.TradeRequest) (*entity.TradeResult, error) {
	started := s.timeProvider.Now()

	amount, err := validateTrade(req)
	if err != nil {
		return nil, err
	}

	var result *entity.TradeResult
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		assetRepo := s.uow.GetAssetRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)
		holdingRepo := s.uow.GetHoldingRepository(txCtx)

		asset, err := assetRepo.GetByIDForUpdate(txCtx, req.AssetID)
		if err != nil {
			return err
		}
		if asset.AvailableSupply.LessThan(amount) {
			return errs.NewTradeError(string(entity.SideBuy), req.UserID, req.AssetID,
				amount.String(), asset.AvailableSupply.String(), errs.ErrInsufficientSupply)
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, req.UserID)
		if err != nil {
			return err
		}

		cost, err := tradeValue(entity.SideBuy, req, asset, amount)
		if err != nil {
			return err
		}
		if !user.CanAfford(cost) {
			return errs.NewTradeError(string(entity.SideBuy), req.UserID, req.AssetID,
				amount.String(), user.Balance.String(),
				errs.NewInsufficientBalanceError(user.ID, cost.String(), user.Balance.String()))
		}

		held := decimal.Zero
		holding, err := holdingRepo.GetForUpdate(txCtx, req.UserID, req.AssetID)
		switch {
		case err == nil:
			held = holding.Amount
		case !errors.Is(err, errs.ErrNoHolding):
			return err
		}

		if err := userRepo.DebitBalance(txCtx, user.ID, cost); err != nil {
			return err
		}
		if err := assetRepo.DecreaseAvailableSupply(txCtx, asset.ID, amount); err != nil {
			if errors.Is(err, errs.ErrInsufficientSupply) {
				return errs.NewTradeError(string(entity.SideBuy), req.UserID, req.AssetID,
					amount.String(), asset.AvailableSupply.String(), err)
			}
			return err
		}
		if err := holdingRepo.Add(txCtx, user.ID, asset.ID, amount); err != nil {
			return err
		}

		result = &entity.TradeResult{
			Side:            entity.SideBuy,
			UserID:          user.ID,
			AssetID:         asset.ID,
			Symbol:          asset.Symbol,
			Amount:          amount,
			Rate:            asset.Rate,
			Total:           cost,
			Balance:         user.Balance.Sub(cost),
			HoldingAmount:   held.Add(amount),
			AvailableSupply: asset.AvailableSupply.Sub(amount),
		}
		return nil
	})
	if err != nil {
		s.logFailure(string(entity.SideBuy), req, started, err)
		return nil, err
	}

	s.logger.Info("Buy executed", map[string]any{
		"user_id":          result.UserID,
		"asset_id":         result.AssetID,
		"amount":           result.Amount.String(),
		"rate":             result.Rate.String(),
		"cost":             result.Total.String(),
		"balance":          result.Balance.String(),
		"available_supply": result.AvailableSupply.String(),
	})

	s.publish(ctx, coreport.EventTradeBuy, result.UserID, tradePayload(result))

	return result, nil
}

// validateTrade checks the ids and parses the amount before any storage access
func validateTrade(req usecase.TradeRequest) (decimal.Decimal, error) {
	if req.UserID == 0 {
		return decimal.Zero, errs.ErrInvalidUserID
	}
	if req.AssetID == 0 {
		return decimal.Zero, fmt.Errorf("%w: asset ID must be positive", errs.ErrInvalidRequest)
	}
	return entity.ParseAmount(req.Amount)
}

// tradeValue prices amount at the locked rate. A trade whose value rounds to
// zero at the stored scale is refused.
func tradeValue(side entity.TradeSide, req usecase.TradeRequest, asset *entity.Asset, amount decimal.Decimal) (decimal.Decimal, error) {
	value := asset.Cost(amount)
	if !value.IsPositive() {
		return decimal.Zero, errs.NewTradeError(string(side), req.UserID, req.AssetID,
			amount.String(), value.String(),
			fmt.Errorf("%w: trade value rounds to zero", errs.ErrInvalidAmount))
	}
	return value, nil
}

func tradePayload(result *entity.TradeResult) map[string]any {
	payload := map[string]any{
		"asset_id":         result.AssetID,
		"symbol":           result.Symbol,
		"amount":           entity.FormatQuantity(result.Amount),
		"rate":             result.Rate.String(),
		"total":            entity.FormatMoney(result.Total),
		"balance":          entity.FormatMoney(result.Balance),
		"holding":          entity.FormatQuantity(result.HoldingAmount),
		"available_supply": entity.FormatQuantity(result.AvailableSupply),
	}
	if result.ReceiptID != "" {
		payload["receipt_id"] = result.ReceiptID
	}
	return payload
}
