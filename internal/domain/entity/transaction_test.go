package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid deposit", func(t *testing.T) {
		req, err := NewRequest(7, KindDeposit, dec("150"), "1709294400000123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, req.Status)
		assert.True(t, req.IsPending())
		assert.Equal(t, fixedTime, req.CreatedAt)
		assert.Nil(t, req.ProcessedAt)
		assert.Equal(t, "000123", req.PaymentReference())
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := NewRequest(0, KindDeposit, dec("150"), "x", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewRequest(7, KindSellCrypto, dec("150"), "x", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequestKind)

		_, err = NewRequest(7, KindWithdraw, decimal.Zero, "x", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewSellRecord(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	record := NewSellRecord(7, dec("400"), "1709294400000999", mockTime)

	assert.Equal(t, KindSellCrypto, record.Kind)
	assert.Equal(t, StatusCompleted, record.Status)
	assert.True(t, dec("400").Equal(record.Amount))
	require.NotNil(t, record.ProcessedAt)
	assert.Equal(t, fixedTime, *record.ProcessedAt)
}

func TestParseKindAndDecision(t *testing.T) {
	kind, err := ParseTransactionKind(" Withdraw ")
	require.NoError(t, err)
	assert.Equal(t, KindWithdraw, kind)

	_, err = ParseTransactionKind("sell_crypto")
	assert.ErrorIs(t, err, errs.ErrInvalidRequestKind)

	decision, err := ParseDecision("APPROVE")
	require.NoError(t, err)
	assert.Equal(t, DecisionApprove, decision)

	_, err = ParseDecision("maybe")
	assert.ErrorIs(t, err, errs.ErrInvalidDecision)
}

func TestTransactionStatusChecks(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBalanceDelta(t *testing.T) {
	deposit := &Transaction{Kind: KindDeposit, Amount: dec("500")}
	withdraw := &Transaction{Kind: KindWithdraw, Amount: dec("500")}

	assert.True(t, dec("500").Equal(deposit.BalanceDelta()))
	assert.True(t, dec("-500").Equal(withdraw.BalanceDelta()))
}

func TestPaymentReferenceShortCode(t *testing.T) {
	tx := &Transaction{UniqueID: "1234"}
	assert.Equal(t, "1234", tx.PaymentReference())
}
