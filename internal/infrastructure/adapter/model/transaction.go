package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for deposit/withdraw requests and sale receipts
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UniqueID    string    `gorm:"uniqueIndex:idx_transactions_unique_id;not null;size:32"`
	UserID      uint64    `gorm:"not null;index"`
	Kind        string    `gorm:"not null;size:20"`
	Amount      Amount    `gorm:"not null"`
	Status      string    `gorm:"not null;size:20;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	ProcessedAt *time.Time
	ProcessedBy *uint64

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// RequestRow is a transaction joined with its owner's identity
type RequestRow struct {
	ID          uint64
	UniqueID    string
	UserID      uint64
	Kind        string
	Amount      decimal.Decimal
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
	ProcessedBy *uint64
	FirstName   string
	LastName    string
	Email       string
}
