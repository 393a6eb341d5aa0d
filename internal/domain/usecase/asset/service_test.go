package asset

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminID = uint64(1)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow     *persistencemocks.MockUnitOfWork
	assets  *persistencemocks.MockAssetRepository
	history *persistencemocks.MockPriceHistoryRepository
	service *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		assets:  persistencemocks.NewMockAssetRepository(t),
		history: persistencemocks.NewMockPriceHistoryRepository(t),
	}

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()

	authorizer := coremocks.NewMockAuthorizer(t)
	authorizer.EXPECT().IsPrivileged(mock.Anything, adminID).Return(true).Maybe()
	authorizer.EXPECT().IsPrivileged(mock.Anything, mock.Anything).Return(false).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetAssetRepository(mock.Anything).Return(f.assets).Maybe()
	f.uow.EXPECT().GetPriceHistoryRepository(mock.Anything).Return(f.history).Maybe()

	f.service = NewAssetService(f.uow, authorizer, clock, logger, 30)
	return f
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func strPtr(value string) *string {
	return &value
}

func listedAsset() *entity.Asset {
	return &entity.Asset{
		ID:              3,
		Name:            "Bitcoin",
		Symbol:          "BTCd",
		Rate:            dec("100"),
		TotalSupply:     dec("50"),
		AvailableSupply: dec("46"),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	req := usecase.CreateAssetRequest{Name: "Bitcoin", Symbol: "BTCd", Rate: "100", TotalSupply: "50"}

	t.Run("Lists the asset with its whole supply and first price", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().ExistsByNameOrSymbol(mock.Anything, "Bitcoin", "BTCd").Return(false, nil).Once()
		f.assets.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Asset")).
			RunAndReturn(func(_ context.Context, a *entity.Asset) error {
				a.ID = 3
				return nil
			}).Once()
		f.history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(p *entity.PriceHistoryPoint) bool {
			return p.AssetID == 3 && p.Rate.Equal(dec("100"))
		})).Return(nil).Once()

		asset, err := f.service.Create(ctx, adminID, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), asset.ID)
		assert.True(t, asset.AvailableSupply.Equal(dec("50")))
	})

	t.Run("Duplicate name or symbol", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().ExistsByNameOrSymbol(mock.Anything, "Bitcoin", "BTCd").Return(true, nil).Once()

		_, err := f.service.Create(ctx, adminID, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateAsset)
	})

	t.Run("Malformed symbol", func(t *testing.T) {
		f := newFixture(t)
		bad := req
		bad.Symbol = "btcd"

		_, err := f.service.Create(ctx, adminID, bad)

		assert.ErrorIs(t, err, errs.ErrInvalidSymbol)
	})

	t.Run("Non-positive rate", func(t *testing.T) {
		f := newFixture(t)
		bad := req
		bad.Rate = "0"

		_, err := f.service.Create(ctx, adminID, bad)

		assert.ErrorIs(t, err, errs.ErrInvalidRate)
	})

	t.Run("Requires privilege", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, 7, req)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Total supply without available resets available", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(listedAsset(), nil).Once()
		f.assets.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *entity.Asset) bool {
			return a.TotalSupply.Equal(dec("80")) && a.AvailableSupply.Equal(dec("80"))
		})).Return(nil).Once()
		f.history.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()

		asset, err := f.service.Update(ctx, adminID, 3, usecase.UpdateAssetRequest{TotalSupply: strPtr("80")})

		require.NoError(t, err)
		assert.True(t, asset.AvailableSupply.Equal(dec("80")))
	})

	t.Run("Rate change is appended to history", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(listedAsset(), nil).Once()
		f.assets.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.history.EXPECT().Append(mock.Anything, mock.MatchedBy(func(p *entity.PriceHistoryPoint) bool {
			return p.AssetID == 3 && p.Rate.Equal(dec("120.5")) && p.CreatedAt.Equal(fixedTime)
		})).Return(nil).Once()

		asset, err := f.service.Update(ctx, adminID, 3, usecase.UpdateAssetRequest{Rate: strPtr("120.5")})

		require.NoError(t, err)
		assert.True(t, asset.AvailableSupply.Equal(dec("46")))
	})

	t.Run("Available above total is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByIDForUpdate(mock.Anything, uint64(3)).Return(listedAsset(), nil).Once()

		_, err := f.service.Update(ctx, adminID, 3, usecase.UpdateAssetRequest{AvailableSupply: strPtr("51")})

		assert.ErrorIs(t, err, errs.ErrInvalidSupply)
	})

	t.Run("Empty update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Update(ctx, adminID, 3, usecase.UpdateAssetRequest{})

		assert.ErrorIs(t, err, errs.ErrEmptyUpdate)
	})

	t.Run("Unknown asset", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByIDForUpdate(mock.Anything, uint64(9)).Return(nil, errs.ErrAssetNotFound).Once()

		_, err := f.service.Update(ctx, adminID, 9, usecase.UpdateAssetRequest{Rate: strPtr("1")})

		assert.ErrorIs(t, err, errs.ErrAssetNotFound)
	})
}

func TestViews(t *testing.T) {
	ctx := context.Background()

	t.Run("Public view hides total supply", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().List(mock.Anything).Return([]*entity.Asset{listedAsset()}, nil).Once()

		views, err := f.service.List(ctx, false)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Nil(t, views[0].TotalSupply)
		assert.Nil(t, views[0].MarketCap)
	})

	t.Run("Private view exposes total supply and market cap", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByID(mock.Anything, uint64(3)).Return(listedAsset(), nil).Once()

		view, err := f.service.Get(ctx, 3, true)

		require.NoError(t, err)
		require.NotNil(t, view.TotalSupply)
		assert.True(t, view.TotalSupply.Equal(dec("50")))
		assert.True(t, view.MarketCap.Equal(dec("5000")))
	})

	t.Run("History window defaults to thirty days", func(t *testing.T) {
		f := newFixture(t)
		f.assets.EXPECT().GetByID(mock.Anything, uint64(3)).Return(listedAsset(), nil).Once()
		f.history.EXPECT().ListSince(mock.Anything, uint64(3), fixedTime.Add(-30*24*time.Hour)).
			Return([]entity.PriceHistoryPoint{{AssetID: 3, Rate: dec("100")}}, nil).Once()

		points, err := f.service.PriceHistory(ctx, 3, 0)

		require.NoError(t, err)
		assert.Len(t, points, 1)
	})
}
