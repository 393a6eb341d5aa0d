package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

var userColumns = []string{
	"id", "first_name", "last_name", "middle_name", "birth_date",
	"email", "phone", "balance", "created_at", "updated_at",
}

// newMockDB opens a postgres gorm session on top of sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userRow(id uint64, balance string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, "Anna", "Smirnova", "", "01.02.1995", "anna@example.com", "+79001234567",
			balance, fixedTime, fixedTime)
}

func TestTransitionStatusIsACompareAndSwap(t *testing.T) {
	ctx := context.Background()
	casUpdate := `UPDATE "transactions" SET .* WHERE id = \$\d+ AND status = \$\d+`
	processedBy := uint64(1)

	t.Run("Matching row wins the swap", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(casUpdate).
			WithArgs(fixedTime, processedBy, "completed", 42, "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))

		swapped, err := repo.TransitionStatus(ctx, 42, entity.StatusPending, entity.StatusCompleted, fixedTime, &processedBy)

		require.NoError(t, err)
		assert.True(t, swapped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No matching row loses the swap", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		mock.ExpectExec(casUpdate).WillReturnResult(sqlmock.NewResult(0, 0))

		swapped, err := repo.TransitionStatus(ctx, 42, entity.StatusPending, entity.StatusRejected, fixedTime, &processedBy)

		require.NoError(t, err)
		assert.False(t, swapped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLockingReadsUseForUpdate(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(userRow(7, "1000.50"))

	user, err := repo.GetByIDForUpdate(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, uint64(7), user.ID)
	assert.True(t, user.Balance.Equal(decimal.RequireFromString("1000.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitBalanceIsGuarded(t *testing.T) {
	ctx := context.Background()
	debit := `UPDATE "users" SET .* WHERE id = \$\d+ AND balance >= \$\d+`

	t.Run("Covered debit", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

		mock.ExpectExec(debit).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DebitBalance(ctx, 7, decimal.NewFromInt(400)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Uncovered debit reports the current balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

		mock.ExpectExec(debit).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WillReturnRows(userRow(7, "100"))

		err := repo.DebitBalance(ctx, 7, decimal.NewFromInt(400))

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncreaseAvailableSupplyGrowsTheTotal(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewAssetRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

	mock.ExpectExec(`UPDATE "assets" SET "available_supply"=available_supply \+ \$\d+,"total_supply"=GREATEST\(total_supply, available_supply \+ \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncreaseAvailableSupply(ctx, 3, decimal.NewFromInt(4)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverErrorsAreMapped(t *testing.T) {
	ctx := context.Background()

	t.Run("Unique id collision", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		mock.ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_transactions_unique_id" (SQLSTATE 23505)`))

		err := repo.Create(ctx, &entity.Transaction{
			UniqueID:  "1709287200000123",
			UserID:    7,
			Kind:      entity.KindDeposit,
			Amount:    decimal.NewFromInt(500),
			Status:    entity.StatusPending,
			CreatedAt: fixedTime,
		})

		assert.ErrorIs(t, err, errs.ErrDuplicateCorrelationCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAssetRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "assets"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 3)

		assert.ErrorIs(t, err, errs.ErrAssetNotFound)
	})

	t.Run("Lost connection", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, timeProvider.NewFixedTimeProvider(fixedTime), logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))

		_, err := repo.GetByID(ctx, 7)

		assert.True(t, errs.IsStorageError(err))
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
