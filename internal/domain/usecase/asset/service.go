package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// DefaultHistoryDays is the price history window used when none is requested
const DefaultHistoryDays = 30

// Service manages the asset catalog. Mutations require a privileged actor.
type Service struct {
	uow          persistence.UnitOfWork
	authorizer   coreport.Authorizer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	historyDays  int
}

var _ usecase.AssetUseCase = (*Service)(nil)

// NewAssetService creates a new asset registry
func NewAssetService(
	uow persistence.UnitOfWork,
	authorizer coreport.Authorizer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	historyDays int,
) *Service {
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}
	return &Service{
		uow:          uow,
		authorizer:   authorizer,
		timeProvider: timeProvider,
		logger:       logger,
		historyDays:  historyDays,
	}
}

// Get returns one asset; the private view adds total supply and market cap
func (s *Service) Get(ctx context.Context, assetID uint64, includePrivate bool) (*entity.AssetView, error) {
	asset, err := s.uow.GetAssetRepository(ctx).GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	view := asset.View(includePrivate)
	return &view, nil
}

// List returns every asset ordered by name
func (s *Service) List(ctx context.Context, includePrivate bool) ([]entity.AssetView, error) {
	assets, err := s.uow.GetAssetRepository(ctx).List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]entity.AssetView, 0, len(assets))
	for _, asset := range assets {
		views = append(views, asset.View(includePrivate))
	}
	return views, nil
}

// Create lists a new asset with its whole supply available and records its first price
func (s *Service) Create(ctx context.Context, actorID uint64, req usecase.CreateAssetRequest) (*entity.Asset, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		return nil, errs.ErrForbidden
	}

	rate, err := parseRate(req.Rate)
	if err != nil {
		return nil, err
	}
	total, err := parseSupply(req.TotalSupply, false)
	if err != nil {
		return nil, err
	}

	asset, err := entity.NewAsset(req.Name, req.Symbol, rate, total, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		assetRepo := s.uow.GetAssetRepository(txCtx)

		exists, err := assetRepo.ExistsByNameOrSymbol(txCtx, asset.Name, asset.Symbol)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: name %q or symbol %q is taken", errs.ErrDuplicateAsset, asset.Name, asset.Symbol)
		}

		if err := assetRepo.Create(txCtx, asset); err != nil {
			return err
		}
		return s.uow.GetPriceHistoryRepository(txCtx).Append(txCtx, &entity.PriceHistoryPoint{
			AssetID:   asset.ID,
			Rate:      asset.Rate,
			CreatedAt: asset.CreatedAt,
		})
	})
	if err != nil {
		s.logger.Warn("Failed to create asset", map[string]any{
			"actor_id": actorID,
			"name":     req.Name,
			"symbol":   req.Symbol,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Asset created", map[string]any{
		"actor_id":     actorID,
		"asset_id":     asset.ID,
		"symbol":       asset.Symbol,
		"rate":         asset.Rate.String(),
		"total_supply": asset.TotalSupply.String(),
	})
	return asset, nil
}

// Update applies an admin edit under a row lock and appends the resulting rate
// to the price history. Supplying total supply without available supply
// resets the available supply to the new total.
func (s *Service) Update(
	ctx context.Context,
	actorID, assetID uint64,
	req usecase.UpdateAssetRequest,
) (*entity.Asset, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		return nil, errs.ErrForbidden
	}

	update, err := parseUpdate(req)
	if err != nil {
		return nil, err
	}

	var asset *entity.Asset
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		assetRepo := s.uow.GetAssetRepository(txCtx)

		locked, err := assetRepo.GetByIDForUpdate(txCtx, assetID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if err := locked.ApplyUpdate(update, now); err != nil {
			return err
		}
		if err := assetRepo.Update(txCtx, locked); err != nil {
			return err
		}
		asset = locked
		return s.uow.GetPriceHistoryRepository(txCtx).Append(txCtx, &entity.PriceHistoryPoint{
			AssetID:   locked.ID,
			Rate:      locked.Rate,
			CreatedAt: now,
		})
	})
	if err != nil {
		s.logger.Warn("Failed to update asset", map[string]any{
			"actor_id": actorID,
			"asset_id": assetID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Asset updated", map[string]any{
		"actor_id":         actorID,
		"asset_id":         asset.ID,
		"rate":             asset.Rate.String(),
		"total_supply":     asset.TotalSupply.String(),
		"available_supply": asset.AvailableSupply.String(),
	})
	return asset, nil
}

// PriceHistory returns the asset's rates over the last days, oldest first
func (s *Service) PriceHistory(ctx context.Context, assetID uint64, days int) ([]entity.PriceHistoryPoint, error) {
	if days <= 0 {
		days = s.historyDays
	}

	if _, err := s.uow.GetAssetRepository(ctx).GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	since := s.timeProvider.Now().Add(-time.Duration(days) * 24 * time.Hour)
	return s.uow.GetPriceHistoryRepository(ctx).ListSince(ctx, assetID, since)
}

func parseRate(value string) (decimal.Decimal, error) {
	rate, err := entity.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidRate, value)
	}
	return rate, nil
}

func parseSupply(value string, allowZero bool) (decimal.Decimal, error) {
	parse := entity.ParseAmount
	if allowZero {
		parse = entity.ParseNonNegativeAmount
	}
	supply, err := parse(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errs.ErrInvalidSupply, value)
	}
	return supply, nil
}

func parseUpdate(req usecase.UpdateAssetRequest) (entity.AssetUpdate, error) {
	var update entity.AssetUpdate

	if req.Rate != nil {
		rate, err := parseRate(*req.Rate)
		if err != nil {
			return update, err
		}
		update.Rate = &rate
	}
	if req.TotalSupply != nil {
		total, err := parseSupply(*req.TotalSupply, false)
		if err != nil {
			return update, err
		}
		update.TotalSupply = &total
	}
	if req.AvailableSupply != nil {
		available, err := parseSupply(*req.AvailableSupply, true)
		if err != nil {
			return update, err
		}
		update.AvailableSupply = &available
	}

	if update.IsEmpty() {
		return update, errs.ErrEmptyUpdate
	}
	return update, nil
}
