package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
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
	uow        *persistencemocks.MockUnitOfWork
	users      *persistencemocks.MockUserRepository
	txns       *persistencemocks.MockTransactionRepository
	authorizer *coremocks.MockAuthorizer
	codes      *coremocks.MockCorrelationCodeGenerator
	notifier   *coremocks.MockNotifier
	service    *Service
}

func newFixture(t *testing.T, config Config) *fixture {
	f := &fixture{
		uow:        persistencemocks.NewMockUnitOfWork(t),
		users:      persistencemocks.NewMockUserRepository(t),
		txns:       persistencemocks.NewMockTransactionRepository(t),
		authorizer: coremocks.NewMockAuthorizer(t),
		codes:      coremocks.NewMockCorrelationCodeGenerator(t),
		notifier:   coremocks.NewMockNotifier(t),
	}
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().With(mock.Anything).Return(logger).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txns).Maybe()

	f.authorizer.EXPECT().IsPrivileged(mock.Anything, adminID).Return(true).Maybe()
	f.authorizer.EXPECT().IsPrivileged(mock.Anything, mock.Anything).Return(false).Maybe()

	f.service = NewRequestService(f.uow, f.authorizer, f.codes, f.notifier, clock, logger, config)
	return f
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decEq(value string) any {
	want := dec(value)
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}

func pendingRequest(kind entity.TransactionKind, amount string) *entity.Transaction {
	return &entity.Transaction{
		ID:        42,
		UniqueID:  "1709287200000123",
		UserID:    7,
		Kind:      kind,
		Amount:    dec(amount),
		Status:    entity.StatusPending,
		CreatedAt: fixedTime.Add(-time.Hour),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deposit is stored as pending", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("250")}, nil).Once()
		f.codes.EXPECT().Generate().Return("1709287200000123").Once()
		f.txns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindDeposit && txn.Status == entity.StatusPending && txn.Amount.Equal(dec("500"))
		})).RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			txn.ID = 42
			return nil
		}).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e coreport.Event) bool {
			return e.Type == coreport.EventRequestCreated && e.Payload["payment_reference"] == "000123"
		})).Return(nil).Once()

		txn, err := f.service.Create(ctx, 7, entity.KindDeposit, "500")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), txn.ID)
		assert.Equal(t, "000123", txn.PaymentReference())
	})

	t.Run("Withdraw above balance is refused at creation", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("250")}, nil).Once()

		_, err := f.service.Create(ctx, 7, entity.KindWithdraw, "300")

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("Below minimum", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.Create(ctx, 7, entity.KindDeposit, "99.99")

		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
	})

	t.Run("Above maximum", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.Create(ctx, 7, entity.KindDeposit, "1000000.01")

		assert.ErrorIs(t, err, errs.ErrAmountAboveMaximum)
	})

	t.Run("Sell records cannot be requested", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.Create(ctx, 7, entity.KindSellCrypto, "500")

		assert.ErrorIs(t, err, errs.ErrInvalidRequestKind)
	})

	t.Run("Unregistered user", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.service.Create(ctx, 7, entity.KindDeposit, "500")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Correlation code collision is retried", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("250")}, nil).Once()
		f.codes.EXPECT().Generate().Return("1709287200000123").Once()
		f.codes.EXPECT().Generate().Return("1709287200000777").Once()
		f.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateCorrelationCode).Once()
		f.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		txn, err := f.service.Create(ctx, 7, entity.KindDeposit, "500")

		require.NoError(t, err)
		assert.Equal(t, "1709287200000777", txn.UniqueID)
	})

	t.Run("Persistent collisions give up", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("250")}, nil).Once()
		f.codes.EXPECT().Generate().Return("1709287200000123").Times(3)
		f.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateCorrelationCode).Times(3)

		_, err := f.service.Create(ctx, 7, entity.KindDeposit, "500")

		assert.ErrorIs(t, err, errs.ErrDuplicateCorrelationCode)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Approved deposit credits the balance", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindDeposit, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("1000")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusCompleted, fixedTime, mock.Anything).
			Return(true, nil).Once()
		f.users.EXPECT().AdjustBalance(mock.Anything, uint64(7), decEq("500")).Return(nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeApproved, result.Outcome)
		assert.Equal(t, entity.StatusCompleted, result.Request.Status)
		assert.True(t, result.BalanceAfter.Equal(dec("1500")))
		require.NotNil(t, result.Request.ProcessedBy)
		assert.Equal(t, adminID, *result.Request.ProcessedBy)
	})

	t.Run("Approved withdraw debits the balance", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindWithdraw, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("1000")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusCompleted, fixedTime, mock.Anything).
			Return(true, nil).Once()
		f.users.EXPECT().AdjustBalance(mock.Anything, uint64(7), decEq("-500")).Return(nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		require.NoError(t, err)
		assert.True(t, result.BalanceAfter.Equal(dec("500")))
	})

	t.Run("Rejected withdraw leaves the balance untouched", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindWithdraw, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("1000")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusRejected, fixedTime, mock.Anything).
			Return(true, nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionReject)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, result.Outcome)
		assert.True(t, result.BalanceAfter.Equal(dec("1000")))
		f.users.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Withdraw no longer covered is auto-rejected", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindWithdraw, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("200")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusRejected, fixedTime, mock.Anything).
			Return(true, nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeAutoRejected, result.Outcome)
		assert.Equal(t, reasonInsufficientBalance, result.Reason)
		assert.True(t, result.BalanceAfter.Equal(dec("200")))
	})

	t.Run("Overdraft policy lets the withdraw through", func(t *testing.T) {
		config := DefaultConfig()
		config.AllowWithdrawOverdraft = true
		f := newFixture(t, config)
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindWithdraw, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("200")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusCompleted, fixedTime, mock.Anything).
			Return(true, nil).Once()
		f.users.EXPECT().AdjustBalance(mock.Anything, uint64(7), decEq("-500")).Return(nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		require.NoError(t, err)
		assert.True(t, result.BalanceAfter.Equal(dec("-300")))
	})

	t.Run("Terminal request reports already processed", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		done := pendingRequest(entity.KindWithdraw, "500")
		done.Status = entity.StatusRejected
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(done, nil).Once()

		_, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		assert.True(t, errs.IsAlreadyProcessedError(err))
		var reqErr *errs.RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, "rejected", reqErr.Status)
	})

	t.Run("Lost compare-and-swap reports already processed without a balance change", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		winner := pendingRequest(entity.KindDeposit, "500")
		winner.Status = entity.StatusRejected
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindDeposit, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("1000")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusCompleted, fixedTime, mock.Anything).
			Return(false, nil).Once()
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(winner, nil).Once()

		_, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		var reqErr *errs.RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, "rejected", reqErr.Status)
		f.users.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lost compare-and-swap with an unreadable winner reports an unknown status", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(pendingRequest(entity.KindDeposit, "500"), nil).Once()
		f.users.EXPECT().GetByIDForUpdate(mock.Anything, uint64(7)).Return(&entity.User{ID: 7, Balance: dec("1000")}, nil).Once()
		f.txns.EXPECT().TransitionStatus(mock.Anything, uint64(42), entity.StatusPending, entity.StatusCompleted, fixedTime, mock.Anything).
			Return(false, nil).Once()
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrStorage).Once()

		_, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		var reqErr *errs.RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, "unknown", reqErr.Status)
		assert.NotEqual(t, string(entity.StatusPending), reqErr.Status)
	})

	t.Run("Unknown request", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrRequestNotFound).Once()

		_, err := f.service.Resolve(ctx, adminID, 42, entity.DecisionApprove)

		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})

	t.Run("Unprivileged actor", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.Resolve(ctx, 7, 42, entity.DecisionApprove)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		f.uow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("Invalid decision", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.Resolve(ctx, adminID, 42, entity.Decision("maybe"))

		assert.ErrorIs(t, err, errs.ErrInvalidDecision)
	})
}

func TestSweepCancel(t *testing.T) {
	t.Run("Publishes when requests were cancelled", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().CancelAllPending(mock.Anything, fixedTime).Return(int64(3), nil).Once()
		f.notifier.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e coreport.Event) bool {
			return e.Type == coreport.EventRequestCancelled && e.Payload["count"] == int64(3)
		})).Return(nil).Once()

		count, err := f.service.SweepCancel(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Nothing pending", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().CancelAllPending(mock.Anything, fixedTime).Return(int64(0), nil).Once()

		count, err := f.service.SweepCancel(context.Background())

		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestListings(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending list requires privilege", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())

		_, err := f.service.ListPending(ctx, 7)

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("Recent list clamps the limit", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.txns.EXPECT().ListRecent(mock.Anything, MaxListLimit).Return([]entity.RequestView{}, nil).Once()

		_, err := f.service.ListRecent(ctx, adminID, 5000)

		require.NoError(t, err)
	})

	t.Run("User history uses the default limit", func(t *testing.T) {
		f := newFixture(t, DefaultConfig())
		f.users.EXPECT().GetByID(mock.Anything, uint64(7)).Return(&entity.User{ID: 7}, nil).Once()
		f.txns.EXPECT().ListByUser(mock.Anything, uint64(7), DefaultRecentLimit).
			Return([]entity.Transaction{*pendingRequest(entity.KindDeposit, "500")}, nil).Once()

		history, err := f.service.ListForUser(ctx, 7, 0)

		require.NoError(t, err)
		assert.Len(t, history, 1)
	})
}
