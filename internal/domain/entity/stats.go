package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserStats summarizes registrations and balances
type UserStats struct {
	Total        int64           `json:"total"`
	NewToday     int64           `json:"newToday"`
	NewLastWeek  int64           `json:"newLastWeek"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// TradingStats summarizes ledger activity over a window
type TradingStats struct {
	WindowDays    int             `json:"windowDays"`
	Transactions  int64           `json:"transactions"`
	Volume        decimal.Decimal `json:"volume"`
	UniqueUsers   int64           `json:"uniqueUsers"`
	WindowStarted time.Time       `json:"windowStarted"`
}

// AssetStats is an asset ranked by the value users currently hold
type AssetStats struct {
	AssetID    uint64          `json:"assetId"`
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	Holders    int64           `json:"holders"`
	HeldAmount decimal.Decimal `json:"heldAmount"`
	HeldValue  decimal.Decimal `json:"heldValue"`
}

// ExchangeStats is the admin dashboard snapshot
type ExchangeStats struct {
	Users       UserStats    `json:"users"`
	Trading     TradingStats `json:"trading"`
	TopAssets   []AssetStats `json:"topAssets"`
	GeneratedAt time.Time    `json:"generatedAt"`
}
