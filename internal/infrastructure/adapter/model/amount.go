package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Amount is a money or quantity column. Postgres stores it as numeric(36,18).
// SQLite has no exact numeric type and would round such a column through
// float64, so there it is kept as canonical decimal text.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d for storage
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// GormDBDataType selects the column type for the connected dialect
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(36,18)"
}
