//go:build postgres

package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/require"
)

// newPostgresLedger runs the ledger against the database named by
// EX_TEST_DB_HOST, EX_TEST_DB_USER, EX_TEST_DB_PASSWORD and EX_TEST_DB_NAME
// with a real connection pool, so concurrent units of work contend on row
// locks instead of queueing for a single connection.
func newPostgresLedger(t *testing.T) *ledger {
	t.Helper()

	host := os.Getenv("EX_TEST_DB_HOST")
	if host == "" {
		t.Skip("EX_TEST_DB_HOST is not set")
	}

	config := DefaultConfig()
	config.Host = host
	config.Username = os.Getenv("EX_TEST_DB_USER")
	config.Password = os.Getenv("EX_TEST_DB_PASSWORD")
	config.Database = os.Getenv("EX_TEST_DB_NAME")
	config.MaxOpenConns = 20
	config.MaxIdleConns = 20
	config.LogLevel = "silent"
	config.RetryAttempts = 0

	log := logger.NewNoopLogger()
	clock := timeProvider.NewFixedTimeProvider(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	manager := NewManager(config, log, clock)
	_, err := manager.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	require.NoError(t, manager.Migrate(ctx))
	require.NoError(t, manager.DB().Exec(
		"TRUNCATE users, assets, holdings, transactions, price_history RESTART IDENTITY CASCADE",
	).Error)

	return newLedgerOn(&TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: clock,
	})
}

func TestPostgresConcurrentBuysNeverOversell(t *testing.T) {
	checkConcurrentBuys(t, newPostgresLedger(t))
}

func TestPostgresConcurrentResolutionsApplyOnce(t *testing.T) {
	checkConcurrentResolutions(t, newPostgresLedger(t))
}

func TestPostgresSellAfterTotalSupplyEdit(t *testing.T) {
	l := newPostgresLedger(t)
	ctx := context.Background()
	l.db.CreateTestUser(t, 7, "0")
	assetID := l.db.CreateTestAsset(t, "BTCd", "100", "50", "46")
	l.db.CreateTestHolding(t, 7, assetID, "4")

	require.NoError(t, l.db.DB().Exec(
		"UPDATE assets SET total_supply = 50, available_supply = 50 WHERE id = ?", assetID,
	).Error)

	_, err := l.trading.Sell(ctx, usecase.TradeRequest{UserID: 7, AssetID: assetID, Amount: "4"})
	require.NoError(t, err)
	assertDecimal(t, "54", l.available(t, assetID))
	assertDecimal(t, "54", l.total(t, assetID))
}
