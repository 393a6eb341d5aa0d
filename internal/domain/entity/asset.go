package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// MinAssetNameLength is the shortest accepted asset name
const MinAssetNameLength = 2

// Asset is a synthetic, admin-priced tradable unit backed by a finite pool
type Asset struct {
	ID              uint64
	Name            string
	Symbol          string
	Rate            decimal.Decimal // price per unit in fiat
	TotalSupply     decimal.Decimal
	AvailableSupply decimal.Decimal // portion of TotalSupply not yet bought by users
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AssetUpdate lists the fields an admin edit may change; nil means unchanged
type AssetUpdate struct {
	Rate            *decimal.Decimal
	TotalSupply     *decimal.Decimal
	AvailableSupply *decimal.Decimal
}

// IsEmpty reports whether the update changes nothing
func (u AssetUpdate) IsEmpty() bool {
	return u.Rate == nil && u.TotalSupply == nil && u.AvailableSupply == nil
}

// AssetView is the read model handed to the presentation layer.
// TotalSupply and MarketCap are only populated for the private view.
type AssetView struct {
	ID              uint64           `json:"id"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	Rate            decimal.Decimal  `json:"rate"`
	AvailableSupply decimal.Decimal  `json:"availableSupply"`
	TotalSupply     *decimal.Decimal `json:"totalSupply,omitempty"`
	MarketCap       *decimal.Decimal `json:"marketCap,omitempty"`
}

// ValidateSymbol reports whether symbol is three uppercase ASCII letters followed by one lowercase ASCII letter
func ValidateSymbol(symbol string) bool {
	if len(symbol) != 4 {
		return false
	}
	for i := 0; i < 3; i++ {
		if symbol[i] < 'A' || symbol[i] > 'Z' {
			return false
		}
	}
	return symbol[3] >= 'a' && symbol[3] <= 'z'
}

// NewAsset validates the listing data and opens the full supply for trading
func NewAsset(name, symbol string, rate, totalSupply decimal.Decimal, timeProvider coreport.TimeProvider) (*Asset, error) {
	name = strings.TrimSpace(name)
	symbol = strings.TrimSpace(symbol)

	if len([]rune(name)) < MinAssetNameLength {
		return nil, fmt.Errorf("%w: name must have at least %d characters", errs.ErrInvalidAssetName, MinAssetNameLength)
	}
	if !ValidateSymbol(symbol) {
		return nil, fmt.Errorf("%w: %q must be 3 uppercase letters followed by 1 lowercase letter", errs.ErrInvalidSymbol, symbol)
	}
	if !rate.IsPositive() {
		return nil, errs.ErrInvalidRate
	}
	if !totalSupply.IsPositive() {
		return nil, fmt.Errorf("%w: total supply must be positive", errs.ErrInvalidSupply)
	}

	now := timeProvider.Now()
	return &Asset{
		Name:            name,
		Symbol:          symbol,
		Rate:            rate,
		TotalSupply:     totalSupply,
		AvailableSupply: totalSupply,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ApplyUpdate applies an admin edit. Supplying a total supply without an
// available supply re-opens the whole total for trading.
func (a *Asset) ApplyUpdate(update AssetUpdate, now time.Time) error {
	if update.IsEmpty() {
		return errs.ErrEmptyUpdate
	}

	rate := a.Rate
	total := a.TotalSupply
	available := a.AvailableSupply

	if update.Rate != nil {
		if !update.Rate.IsPositive() {
			return errs.ErrInvalidRate
		}
		rate = *update.Rate
	}
	if update.TotalSupply != nil {
		total = *update.TotalSupply
		available = total
	}
	if update.AvailableSupply != nil {
		available = *update.AvailableSupply
	}

	if !total.IsPositive() {
		return fmt.Errorf("%w: total supply must be positive", errs.ErrInvalidSupply)
	}
	if available.IsNegative() || available.GreaterThan(total) {
		return fmt.Errorf("%w: available supply %s must be between 0 and total supply %s",
			errs.ErrInvalidSupply, available.String(), total.String())
	}

	a.Rate = rate
	a.TotalSupply = total
	a.AvailableSupply = available
	a.UpdatedAt = now
	return nil
}

// MarketCap is rate times total supply
func (a *Asset) MarketCap() decimal.Decimal {
	return a.Rate.Mul(a.TotalSupply)
}

// Cost returns the fiat value of amount units at the current rate, rounded
// to the scale the ledger stores
func (a *Asset) Cost(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(a.Rate).RoundBank(MaxScale)
}

// View renders the asset for the presentation layer
func (a *Asset) View(includePrivate bool) AssetView {
	view := AssetView{
		ID:              a.ID,
		Name:            a.Name,
		Symbol:          a.Symbol,
		Rate:            a.Rate,
		AvailableSupply: a.AvailableSupply,
	}
	if includePrivate {
		total := a.TotalSupply
		marketCap := a.MarketCap()
		view.TotalSupply = &total
		view.MarketCap = &marketCap
	}
	return view
}

// PriceHistoryPoint records the rate of an asset after a listing or an edit
type PriceHistoryPoint struct {
	ID        uint64
	AssetID   uint64
	Rate      decimal.Decimal
	CreatedAt time.Time
}
