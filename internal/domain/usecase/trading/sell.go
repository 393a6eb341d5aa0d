package trading

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Sell credits the user's balance with amount*rate, returns amount to the
// asset's available supply, reduces the holding (removing the row once nothing
// remains) and records a completed sell_crypto audit entry, all in one unit
// of work.
//
// A receipt code collision rolls the whole unit back, so the sale is retried
// with a fresh code; nothing from the failed attempt is visible.
func (s *Service) Sell(ctx context.Context, req usecase.TradeRequest) (*entity.TradeResult, error) {
	started := s.timeProvider.Now()

	amount, err := validateTrade(req)
	if err != nil {
		return nil, err
	}

	var result *entity.TradeResult
	for attempt := 1; attempt <= s.correlationRetries; attempt++ {
		result, err = s.sellOnce(ctx, req, amount)
		if !errors.Is(err, errs.ErrDuplicateCorrelationCode) {
			break
		}
		s.logger.Warn("Receipt code collision, retrying sale", map[string]any{
			"user_id":  req.UserID,
			"asset_id": req.AssetID,
			"attempt":  attempt,
		})
	}
	if err != nil {
		s.logFailure(string(entity.SideSell), req, started, err)
		return nil, err
	}

	s.logger.Info("Sell executed", map[string]any{
		"user_id":          result.UserID,
		"asset_id":         result.AssetID,
		"amount":           result.Amount.String(),
		"rate":             result.Rate.String(),
		"proceeds":         result.Total.String(),
		"balance":          result.Balance.String(),
		"available_supply": result.AvailableSupply.String(),
		"holding_closed":   result.HoldingClosed,
		"receipt_id":       result.ReceiptID,
	})

	s.publish(ctx, coreport.EventTradeSell, result.UserID, tradePayload(result))

	return result, nil
}

func (s *Service) sellOnce(ctx context.Context, req usecase.TradeRequest, amount decimal.Decimal) (*entity.TradeResult, error) {
	var result *entity.TradeResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		assetRepo := s.uow.GetAssetRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)
		holdingRepo := s.uow.GetHoldingRepository(txCtx)
		txnRepo := s.uow.GetTransactionRepository(txCtx)

		asset, err := assetRepo.GetByIDForUpdate(txCtx, req.AssetID)
		if err != nil {
			return err
		}

		user, err := userRepo.GetByIDForUpdate(txCtx, req.UserID)
		if err != nil {
			return err
		}

		holding, err := holdingRepo.GetForUpdate(txCtx, req.UserID, req.AssetID)
		if err != nil {
			if errors.Is(err, errs.ErrNoHolding) {
				return errs.NewTradeError(string(entity.SideSell), req.UserID, req.AssetID,
					amount.String(), "", errs.ErrNoHolding)
			}
			return err
		}
		if holding.Amount.LessThan(amount) {
			return errs.NewTradeError(string(entity.SideSell), req.UserID, req.AssetID,
				amount.String(), holding.Amount.String(), errs.ErrInsufficientHolding)
		}

		proceeds, err := tradeValue(entity.SideSell, req, asset, amount)
		if err != nil {
			return err
		}
		if err := userRepo.AdjustBalance(txCtx, user.ID, proceeds); err != nil {
			return err
		}

		remainder := holding.Amount.Sub(amount)
		closed := !remainder.IsPositive()
		if closed {
			err = holdingRepo.Delete(txCtx, user.ID, asset.ID)
		} else {
			err = holdingRepo.Reduce(txCtx, user.ID, asset.ID, amount)
		}
		if err != nil {
			return err
		}

		if err := assetRepo.IncreaseAvailableSupply(txCtx, asset.ID, amount); err != nil {
			return err
		}

		record := entity.NewSellRecord(user.ID, proceeds, s.codes.Generate(), s.timeProvider)
		if err := txnRepo.Create(txCtx, record); err != nil {
			return err
		}

		if closed {
			remainder = decimal.Zero
		}
		result = &entity.TradeResult{
			Side:            entity.SideSell,
			UserID:          user.ID,
			AssetID:         asset.ID,
			Symbol:          asset.Symbol,
			Amount:          amount,
			Rate:            asset.Rate,
			Total:           proceeds,
			Balance:         user.Balance.Add(proceeds),
			HoldingAmount:   remainder,
			AvailableSupply: asset.AvailableSupply.Add(amount),
			HoldingClosed:   closed,
			ReceiptID:       record.UniqueID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
