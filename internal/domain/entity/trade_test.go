package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBuyAmount(t *testing.T) {
	testCases := []struct {
		name      string
		balance   string
		rate      string
		available string
		expected  string
	}{
		{"Balance bound", "1000", "100", "50", "10"},
		{"Supply bound", "1000", "100", "4", "4"},
		{"Fractional affordability", "1000", "300", "50", "3.333333333333"},
		{"Empty balance", "0", "100", "50", "0"},
		{"Sold out", "1000", "100", "0", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaxBuyAmount(dec(tc.balance), dec(tc.rate), dec(tc.available))
			assert.True(t, dec(tc.expected).Equal(got), "got %s", got.String())
		})
	}

	t.Run("Max buy never costs more than the balance", func(t *testing.T) {
		balance := dec("1000")
		rate := dec("300")
		max := MaxBuyAmount(balance, rate, dec("50"))
		assert.True(t, max.Mul(rate).LessThanOrEqual(balance))
	})
}

func TestPercentOf(t *testing.T) {
	assert.True(t, dec("2.5").Equal(PercentOf(dec("10"), 25)))
	assert.True(t, dec("1").Equal(PercentOf(dec("10"), 10)))
	assert.True(t, dec("10").Equal(PercentOf(dec("10"), 100)))
	assert.True(t, dec("0.000000000007").Equal(PercentOf(dec("0.00000000001"), 75)))
	assert.True(t, decimal.Zero.Equal(PercentOf(decimal.Zero, 50)))
}

func TestValidateQuotePercent(t *testing.T) {
	for _, p := range QuotePercentages {
		assert.NoError(t, ValidateQuotePercent(p))
	}
	assert.ErrorIs(t, ValidateQuotePercent(33), errs.ErrInvalidPercentage)
	assert.ErrorIs(t, ValidateQuotePercent(0), errs.ErrInvalidPercentage)
}

func TestParseTradeSide(t *testing.T) {
	side, err := ParseTradeSide("SELL")
	require.NoError(t, err)
	assert.Equal(t, SideSell, side)

	_, err = ParseTradeSide("hold")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestNewPortfolio(t *testing.T) {
	portfolio := NewPortfolio(9, []PortfolioItem{
		{AssetID: 1, Symbol: "BTCd", Amount: dec("4"), Rate: dec("100")},
		{AssetID: 2, Symbol: "ETHx", Amount: dec("0.5"), Rate: dec("30")},
	})

	assert.True(t, dec("400").Equal(portfolio.Items[0].Value))
	assert.True(t, dec("15").Equal(portfolio.Items[1].Value))
	assert.True(t, dec("415").Equal(portfolio.TotalValue))
}
