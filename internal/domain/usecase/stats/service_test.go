package stats

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	newService := func(t *testing.T, repo *persistencemocks.MockStatsRepository, privileged bool) *Service {
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Now().Return(now).Maybe()
		authorizer := coremocks.NewMockAuthorizer(t)
		authorizer.EXPECT().IsPrivileged(mock.Anything, uint64(1)).Return(privileged).Once()
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
		return NewStatsService(repo, authorizer, clock, logger)
	}

	t.Run("Aggregates the three sections", func(t *testing.T) {
		repo := persistencemocks.NewMockStatsRepository(t)
		repo.EXPECT().UserStats(mock.Anything,
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			now.AddDate(0, 0, -7),
		).Return(entity.UserStats{Total: 12, NewToday: 2, NewLastWeek: 5, TotalBalance: decimal.NewFromInt(4200)}, nil).Once()
		repo.EXPECT().TradingStats(mock.Anything, now.AddDate(0, 0, -30)).
			Return(entity.TradingStats{Transactions: 40, Volume: decimal.NewFromInt(9000), UniqueUsers: 6}, nil).Once()
		repo.EXPECT().TopAssets(mock.Anything, TopAssetsLimit).
			Return([]entity.AssetStats{{AssetID: 1, Symbol: "BTCd", Holders: 3}}, nil).Once()

		snapshot, err := newService(t, repo, true).Snapshot(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(12), snapshot.Users.Total)
		assert.Equal(t, TradingWindowDays, snapshot.Trading.WindowDays)
		assert.Equal(t, now.AddDate(0, 0, -30), snapshot.Trading.WindowStarted)
		assert.Len(t, snapshot.TopAssets, 1)
		assert.Equal(t, now, snapshot.GeneratedAt)
	})

	t.Run("Requires privilege", func(t *testing.T) {
		repo := persistencemocks.NewMockStatsRepository(t)

		_, err := newService(t, repo, false).Snapshot(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Storage failure aborts the snapshot", func(t *testing.T) {
		repo := persistencemocks.NewMockStatsRepository(t)
		repo.EXPECT().UserStats(mock.Anything, mock.Anything, mock.Anything).Return(entity.UserStats{}, errs.ErrStorage).Once()

		_, err := newService(t, repo, true).Snapshot(ctx, 1)

		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
