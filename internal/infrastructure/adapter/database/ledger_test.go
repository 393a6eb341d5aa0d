package database

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	assetUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/asset"
	requestUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/request"
	tradingUseCase "github.com/amirhossein-jamali/exchange-ledger/internal/domain/usecase/trading"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/correlation"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const ledgerAdminID = uint64(1)

type ledger struct {
	db       *TestDBManager
	trading  *tradingUseCase.Service
	requests *requestUseCase.Service
	assets   *assetUseCase.Service
}

func newLedger(t *testing.T) *ledger {
	t.Helper()

	log := logger.NewNoopLogger()
	clock := timeProvider.NewFixedTimeProvider(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	return newLedgerOn(NewTestDBManager(t, log, clock))
}

func newLedgerOn(db *TestDBManager) *ledger {
	log := db.Logger
	clock := db.TimeProvider

	uow := db.Manager.CreateUnitOfWork()
	codes := correlation.NewTimestampGenerator(clock)
	events := notifier.NewLogNotifier(log)
	authorizer := auth.NewAdminAuthorizer(
		repository.NewUserRepository(db.DB(), clock, log),
		[]uint64{ledgerAdminID}, "", time.Minute, log,
	)

	return &ledger{
		db:       db,
		trading:  tradingUseCase.NewTradingService(uow, codes, events, clock, log, 3),
		requests: requestUseCase.NewRequestService(uow, authorizer, codes, events, clock, log, requestUseCase.DefaultConfig()),
		assets:   assetUseCase.NewAssetService(uow, authorizer, clock, log, 0),
	}
}

func (l *ledger) balance(t *testing.T, userID uint64) decimal.Decimal {
	t.Helper()
	var user model.User
	require.NoError(t, l.db.DB().First(&user, userID).Error)
	return user.Balance.Decimal
}

func (l *ledger) available(t *testing.T, assetID uint64) decimal.Decimal {
	t.Helper()
	var asset model.Asset
	require.NoError(t, l.db.DB().First(&asset, assetID).Error)
	return asset.AvailableSupply.Decimal
}

func (l *ledger) total(t *testing.T, assetID uint64) decimal.Decimal {
	t.Helper()
	var asset model.Asset
	require.NoError(t, l.db.DB().First(&asset, assetID).Error)
	return asset.TotalSupply.Decimal
}

func (l *ledger) holdings(t *testing.T, userID, assetID uint64) []model.Holding {
	t.Helper()
	var rows []model.Holding
	require.NoError(t, l.db.DB().Where("user_id = ? AND asset_id = ?", userID, assetID).Find(&rows).Error)
	return rows
}

func (l *ledger) status(t *testing.T, requestID uint64) string {
	t.Helper()
	var txn model.Transaction
	require.NoError(t, l.db.DB().First(&txn, requestID).Error)
	return txn.Status
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestBuyThenSellRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")
	assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "50")

	bought, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "4"})
	require.NoError(t, err)
	assertDecimal(t, "600", bought.Balance)
	assertDecimal(t, "46", bought.AvailableSupply)
	assertDecimal(t, "4", bought.HoldingAmount)

	assertDecimal(t, "600", l.balance(t, 7))
	assertDecimal(t, "46", l.available(t, assetID))
	require.Len(t, l.holdings(t, 7, assetID), 1)
	assertDecimal(t, "4", l.holdings(t, 7, assetID)[0].Amount.Decimal)

	sold, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "4"})
	require.NoError(t, err)
	assert.True(t, sold.HoldingClosed)
	assert.NotEmpty(t, sold.ReceiptID)

	assertDecimal(t, "1000", l.balance(t, 7))
	assertDecimal(t, "50", l.available(t, assetID))
	assert.Empty(t, l.holdings(t, 7, assetID))

	var receipts []model.Transaction
	require.NoError(t, l.db.DB().Where("user_id = ? AND kind = ?", 7, string(entity.KindSellCrypto)).Find(&receipts).Error)
	require.Len(t, receipts, 1)
	assert.Equal(t, string(entity.StatusCompleted), receipts[0].Status)
	assertDecimal(t, "400", receipts[0].Amount.Decimal)
}

func TestRepeatedBuysAccumulateOneHolding(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")
	assetID := l.db.CreateTestAsset(t, "ETHd", "10", "100", "100")

	for i := 0; i < 3; i++ {
		_, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "2"})
		require.NoError(t, err)
	}

	rows := l.holdings(t, 7, assetID)
	require.Len(t, rows, 1)
	assertDecimal(t, "6", rows[0].Amount.Decimal)
	assertDecimal(t, "940", l.balance(t, 7))
}

func TestFractionalTradesDoNotDrift(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")
	assetID := l.db.CreateTestAsset(t, "FRCd", "0.3", "100", "100")

	for i := 0; i < 3; i++ {
		_, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "0.1"})
		require.NoError(t, err)
	}
	assertDecimal(t, "999.91", l.balance(t, 7))
	assertDecimal(t, "99.7", l.available(t, assetID))
	require.Len(t, l.holdings(t, 7, assetID), 1)
	assertDecimal(t, "0.3", l.holdings(t, 7, assetID)[0].Amount.Decimal)

	sold, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "0.3"})
	require.NoError(t, err)
	assert.True(t, sold.HoldingClosed)

	assert.Empty(t, l.holdings(t, 7, assetID))
	assert.Equal(t, "1000", l.balance(t, 7).String())
	assertDecimal(t, "100", l.available(t, assetID))
}

func TestSellAfterTotalSupplyEdit(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "0")
	assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "46")
	l.db.CreateTestHolding(t, 7, assetID, "4")

	total := "50"
	edited, err := l.assets.Update(ctx, ledgerAdminID, assetID, usecase.UpdateAssetRequest{TotalSupply: &total})
	require.NoError(t, err)
	assertDecimal(t, "50", edited.AvailableSupply)

	sold, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "4"})
	require.NoError(t, err)
	assertDecimal(t, "54", sold.AvailableSupply)

	assertDecimal(t, "400", l.balance(t, 7))
	assertDecimal(t, "54", l.available(t, assetID))
	assertDecimal(t, "54", l.total(t, assetID))
	assert.Empty(t, l.holdings(t, 7, assetID))
}

func TestFailedTradesLeaveNoTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("Buy beyond the balance", func(t *testing.T) {
		l := newLedger(t)
		l.db.CreateTestUser(t, 7, "100")
		assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "50")

		_, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "2"})

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assertDecimal(t, "100", l.balance(t, 7))
		assertDecimal(t, "50", l.available(t, assetID))
		assert.Empty(t, l.holdings(t, 7, assetID))
	})

	t.Run("Buy beyond the supply", func(t *testing.T) {
		l := newLedger(t)
		l.db.CreateTestUser(t, 7, "100000")
		assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "3")

		_, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "4"})

		assert.ErrorIs(t, err, errs.ErrInsufficientSupply)
		assertDecimal(t, "100000", l.balance(t, 7))
		assertDecimal(t, "3", l.available(t, assetID))
	})

	t.Run("Sell beyond the holding", func(t *testing.T) {
		l := newLedger(t)
		l.db.CreateTestUser(t, 7, "0")
		assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "48")
		l.db.CreateTestHolding(t, 7, assetID, "2")

		_, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "3"})

		assert.ErrorIs(t, err, errs.ErrInsufficientHolding)
		assertDecimal(t, "0", l.balance(t, 7))
		assertDecimal(t, "48", l.available(t, assetID))
		assertDecimal(t, "2", l.holdings(t, 7, assetID)[0].Amount.Decimal)

		var count int64
		require.NoError(t, l.db.DB().Model(&model.Transaction{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("Sell without a holding", func(t *testing.T) {
		l := newLedger(t)
		l.db.CreateTestUser(t, 7, "0")
		assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "50")

		_, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "1"})

		assert.ErrorIs(t, err, errs.ErrNoHolding)
	})
}

func TestRejectedWithdrawIsFinal(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")

	withdraw, err := l.requests.Create(ctx, 7, entity.KindWithdraw, "500")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPending), l.status(t, withdraw.ID))

	result, err := l.requests.Resolve(ctx, ledgerAdminID, withdraw.ID, entity.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeRejected, result.Outcome)
	assertDecimal(t, "1000", l.balance(t, 7))

	_, err = l.requests.Resolve(ctx, ledgerAdminID, withdraw.ID, entity.DecisionApprove)
	assert.True(t, errs.IsAlreadyProcessedError(err))
	assertDecimal(t, "1000", l.balance(t, 7))
	assert.Equal(t, string(entity.StatusRejected), l.status(t, withdraw.ID))
}

func TestApprovedDepositRecordsTheAdmin(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")

	deposit, err := l.requests.Create(ctx, 7, entity.KindDeposit, "250.50")
	require.NoError(t, err)

	_, err = l.requests.Resolve(ctx, ledgerAdminID, deposit.ID, entity.DecisionApprove)
	require.NoError(t, err)

	assertDecimal(t, "1250.50", l.balance(t, 7))

	var stored model.Transaction
	require.NoError(t, l.db.DB().First(&stored, deposit.ID).Error)
	assert.Equal(t, string(entity.StatusCompleted), stored.Status)
	require.NotNil(t, stored.ProcessedBy)
	assert.Equal(t, ledgerAdminID, *stored.ProcessedBy)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestSweepCancelClosesPendingRequests(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")

	first, err := l.requests.Create(ctx, 7, entity.KindDeposit, "300")
	require.NoError(t, err)
	second, err := l.requests.Create(ctx, 7, entity.KindWithdraw, "200")
	require.NoError(t, err)

	pending, err := l.requests.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	cancelled, err := l.requests.SweepCancel(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cancelled)

	assert.Equal(t, string(entity.StatusCancelled), l.status(t, first.ID))
	assert.Equal(t, string(entity.StatusCancelled), l.status(t, second.ID))

	_, err = l.requests.Resolve(ctx, ledgerAdminID, first.ID, entity.DecisionApprove)
	assert.True(t, errs.IsAlreadyProcessedError(err))
	assertDecimal(t, "1000", l.balance(t, 7))
}

func TestConcurrentBuysNeverOversell(t *testing.T) {
	checkConcurrentBuys(t, newLedger(t))
}

func checkConcurrentBuys(t *testing.T, l *ledger) {
	t.Helper()
	ctx := context.Background()
	assetID := l.db.CreateTestAsset(t, "SOLd", "10", "5", "5")

	const buyers = 10
	for id := uint64(10); id < 10+buyers; id++ {
		l.db.CreateTestUser(t, id, "1000")
	}

	var succeeded, outOfSupply atomic.Int64
	var group errgroup.Group
	for id := uint64(10); id < 10+buyers; id++ {
		id := id
		group.Go(func() error {
			_, err := l.trading.Buy(ctx, usecase.TradeRequest{UserID: id, AssetID: assetID, Amount: "1"})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, errs.ErrInsufficientSupply):
				outOfSupply.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.Equal(t, int64(5), succeeded.Load())
	assert.Equal(t, int64(buyers-5), outOfSupply.Load())
	assertDecimal(t, "0", l.available(t, assetID))

	var held []model.Holding
	require.NoError(t, l.db.DB().Where("asset_id = ?", assetID).Find(&held).Error)
	total := decimal.Zero
	for _, h := range held {
		total = total.Add(h.Amount.Decimal)
	}
	assertDecimal(t, "5", total)
}

func TestConcurrentResolutionsApplyOnce(t *testing.T) {
	checkConcurrentResolutions(t, newLedger(t))
}

func checkConcurrentResolutions(t *testing.T, l *ledger) {
	t.Helper()
	ctx := context.Background()
	l.db.CreateTestUser(t, 7, "1000")

	deposit, err := l.requests.Create(ctx, 7, entity.KindDeposit, "500")
	require.NoError(t, err)

	const resolvers = 8
	var applied, alreadyProcessed atomic.Int64
	var group errgroup.Group
	for i := 0; i < resolvers; i++ {
		decision := entity.DecisionApprove
		if i%2 == 1 {
			decision = entity.DecisionReject
		}
		group.Go(func() error {
			_, err := l.requests.Resolve(ctx, ledgerAdminID, deposit.ID, decision)
			switch {
			case err == nil:
				applied.Add(1)
			case errs.IsAlreadyProcessedError(err):
				alreadyProcessed.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.Equal(t, int64(1), applied.Load())
	assert.Equal(t, int64(resolvers-1), alreadyProcessed.Load())

	switch l.status(t, deposit.ID) {
	case string(entity.StatusCompleted):
		assertDecimal(t, "1500", l.balance(t, 7))
	case string(entity.StatusRejected):
		assertDecimal(t, "1000", l.balance(t, 7))
	default:
		t.Fatalf("request left in status %s", l.status(t, deposit.ID))
	}
}

func TestStatsRepositoryAggregates(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	l.db.CreateTestUser(t, 7, "1000")
	l.db.CreateTestUser(t, 8, "500")
	btc := l.db.CreateTestAsset(t, "BTCd", "100", "50", "46")
	eth := l.db.CreateTestAsset(t, "ETHd", "10", "50", "49")
	l.db.CreateTestHolding(t, 7, btc, "4")
	l.db.CreateTestHolding(t, 8, eth, "1")

	deposit, err := l.requests.Create(ctx, 8, entity.KindDeposit, "500")
	require.NoError(t, err)
	_, err = l.requests.Resolve(ctx, ledgerAdminID, deposit.ID, entity.DecisionApprove)
	require.NoError(t, err)

	stats := l.db.Manager.StatsRepository()
	dayStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	users, err := stats.UserStats(ctx, dayStart, dayStart.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(2), users.Total)
	assert.Equal(t, int64(2), users.NewToday)
	assertDecimal(t, "2000", users.TotalBalance)

	trading, err := stats.TradingStats(ctx, dayStart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), trading.Transactions)
	assert.Equal(t, int64(1), trading.UniqueUsers)
	assertDecimal(t, "500", trading.Volume)

	top, err := stats.TopAssets(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, btc, top[0].AssetID)
	assertDecimal(t, "400", top[0].HeldValue)
	assert.Equal(t, int64(1), top[1].Holders)
}
