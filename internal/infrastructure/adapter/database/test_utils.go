package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with an in-memory sqlite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory database named after the
// test, migrates it and closes it when the test ends.
//
// A single connection serialises units of work, so concurrency tests on
// sqlite check the outcome of queued trades but never contend on row locks.
// ledger_postgres_test.go, built with the postgres tag, runs the same checks
// against a pooled postgres connection.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	config := &Config{
		Driver:          DriverSQLite,
		Database:        fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		SlowThreshold:   time.Second,
		LogLevel:        "silent", // Silent logging in tests by default
		RetryAttempts:   0,        // Fail fast
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the underlying connection
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestUser creates a test user with the specified ID and balance
func (m *TestDBManager) CreateTestUser(t *testing.T, id uint64, balance string) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        id,
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", id),
		BirthDate: "01.01.1990",
		Email:     fmt.Sprintf("user%d@example.com", id),
		Phone:     "+70000000000",
		Balance:   model.NewAmount(decimal.RequireFromString(balance)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestAsset lists an asset with the given rate and supply and returns its ID
func (m *TestDBManager) CreateTestAsset(t *testing.T, symbol, rate, total, available string) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	asset := model.Asset{
		Name:            "Asset " + symbol,
		Symbol:          symbol,
		Rate:            model.NewAmount(decimal.RequireFromString(rate)),
		TotalSupply:     model.NewAmount(decimal.RequireFromString(total)),
		AvailableSupply: model.NewAmount(decimal.RequireFromString(available)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := m.DB().Create(&asset).Error; err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}
	return asset.ID
}

// CreateTestHolding gives a user an amount of an asset
func (m *TestDBManager) CreateTestHolding(t *testing.T, userID, assetID uint64, amount string) {
	t.Helper()

	holding := model.Holding{
		UserID:    userID,
		AssetID:   assetID,
		Amount:    model.NewAmount(decimal.RequireFromString(amount)),
		UpdatedAt: m.TimeProvider.Now(),
	}

	if err := m.DB().Omit("User", "Asset").Create(&holding).Error; err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}
}
