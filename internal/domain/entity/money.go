package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the number of fractional digits the ledger stores for any amount
	MaxScale = 18

	// QuoteScale bounds the fractional digits of quantities derived by division
	QuoteScale = 12

	// MoneyDisplayPlaces is the number of decimals used when rendering fiat values
	MoneyDisplayPlaces = 2
)

// ParseAmount parses a strictly positive decimal amount such as "4", "0.25" or "1500.50"
func ParseAmount(amount string) (decimal.Decimal, error) {
	value, err := ParseNonNegativeAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return value, nil
}

// ParseNonNegativeAmount parses a decimal amount that may be zero
func ParseNonNegativeAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.ContainsAny(amount, "eE") {
		return decimal.Zero, fmt.Errorf("%w: exponent notation is not accepted", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if -value.Exponent() > MaxScale {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxScale)
	}

	return value, nil
}

// FormatMoney renders a fiat value with two decimal places
func FormatMoney(value decimal.Decimal) string {
	return value.StringFixed(MoneyDisplayPlaces)
}

// FormatQuantity renders an asset quantity with 8 decimals when it is at least one
// unit and with 12 decimals below that
func FormatQuantity(value decimal.Decimal) string {
	if value.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return value.StringFixed(8)
	}
	return value.StringFixed(12)
}
