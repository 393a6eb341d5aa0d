package model

import (
	"time"
)

// Asset represents the database model for listed assets
type Asset struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"not null;size:100;uniqueIndex:idx_assets_name"`
	Symbol          string    `gorm:"not null;size:4;uniqueIndex:idx_assets_symbol"`
	Rate            Amount    `gorm:"not null"`
	TotalSupply     Amount    `gorm:"not null"`
	AvailableSupply Amount    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// Holding represents one user's quantity of one asset
type Holding struct {
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false"`
	AssetID   uint64    `gorm:"primaryKey;autoIncrement:false;index"`
	Amount    Amount    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Define relationships
	User  User  `gorm:"foreignKey:UserID;references:ID"`
	Asset Asset `gorm:"foreignKey:AssetID;references:ID"`
}

// TableName specifies the table name for Holding
func (Holding) TableName() string {
	return "holdings"
}

// PriceHistory is one rate observation of an asset
type PriceHistory struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AssetID   uint64    `gorm:"not null;index:idx_price_history_asset_created,priority:1"`
	Rate      Amount    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_price_history_asset_created,priority:2"`

	Asset Asset `gorm:"foreignKey:AssetID;references:ID"`
}

// TableName specifies the table name for PriceHistory
func (PriceHistory) TableName() string {
	return "price_history"
}
