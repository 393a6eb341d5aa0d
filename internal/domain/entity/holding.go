package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a user's owned quantity of one asset. The pair (UserID, AssetID) is unique.
type Holding struct {
	UserID    uint64
	AssetID   uint64
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// PortfolioItem is one holding priced at the asset's current rate
type PortfolioItem struct {
	AssetID uint64          `json:"assetId"`
	Name    string          `json:"name"`
	Symbol  string          `json:"symbol"`
	Amount  decimal.Decimal `json:"amount"`
	Rate    decimal.Decimal `json:"rate"`
	Value   decimal.Decimal `json:"value"`
}

// Portfolio is the priced set of a user's holdings
type Portfolio struct {
	UserID     uint64          `json:"userId"`
	Items      []PortfolioItem `json:"items"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// NewPortfolio prices the items and sums their value
func NewPortfolio(userID uint64, items []PortfolioItem) *Portfolio {
	total := decimal.Zero
	for i := range items {
		items[i].Value = items[i].Amount.Mul(items[i].Rate)
		total = total.Add(items[i].Value)
	}
	return &Portfolio{
		UserID:     userID,
		Items:      items,
		TotalValue: total,
	}
}
