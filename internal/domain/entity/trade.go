package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// TradeSide is buy or sell
type TradeSide string

// Trade sides
const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// QuotePercentages are the percentage-of-max choices offered to users
var QuotePercentages = []int64{10, 25, 50, 75, 100}

// TradeResult describes the state after a committed buy or sell
type TradeResult struct {
	Side            TradeSide
	UserID          uint64
	AssetID         uint64
	Symbol          string
	Amount          decimal.Decimal
	Rate            decimal.Decimal // rate read inside the unit of work
	Total           decimal.Decimal // cost of a buy or proceeds of a sale
	Balance         decimal.Decimal
	HoldingAmount   decimal.Decimal
	AvailableSupply decimal.Decimal
	HoldingClosed   bool // set when a sale removed the holding row
	ReceiptID       string
}

// TradeQuote is an advisory amount for a percentage-of-max button
type TradeQuote struct {
	Side      TradeSide       `json:"side"`
	AssetID   uint64          `json:"assetId"`
	Percent   int64           `json:"percent"`
	MaxAmount decimal.Decimal `json:"maxAmount"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Total     decimal.Decimal `json:"total"`
}

// ParseTradeSide accepts "buy" or "sell" in any case
func ParseTradeSide(side string) (TradeSide, error) {
	s := TradeSide(strings.ToLower(strings.TrimSpace(side)))
	if s != SideBuy && s != SideSell {
		return "", fmt.Errorf("%w: unknown side %q", errs.ErrInvalidRequest, side)
	}
	return s, nil
}

// ValidateQuotePercent checks percent is one of QuotePercentages
func ValidateQuotePercent(percent int64) error {
	for _, p := range QuotePercentages {
		if p == percent {
			return nil
		}
	}
	return fmt.Errorf("%w: %d", errs.ErrInvalidPercentage, percent)
}

// MaxBuyAmount is the largest quantity the balance and the pool both allow
func MaxBuyAmount(balance, rate, available decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() || !available.IsPositive() || !balance.IsPositive() {
		return decimal.Zero
	}
	affordable := balance.DivRound(rate, QuoteScale+1).Truncate(QuoteScale)
	return decimal.Min(affordable, available)
}

// PercentOf returns percent% of max truncated to QuoteScale places
func PercentOf(max decimal.Decimal, percent int64) decimal.Decimal {
	if percent >= 100 {
		return max
	}
	return max.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100)).Truncate(QuoteScale)
}
