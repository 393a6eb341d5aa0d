package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// textAmounts reports whether db keeps amount columns as decimal text, in
// which case arithmetic on them happens in Go rather than in SQL
func textAmounts(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}

// amountChange adds delta to one amount column of a single row
type amountChange struct {
	table  string
	column string
	delta  decimal.Decimal
	// floor keeps the column at or above zero; a change that would cross it is not applied
	floor bool
	// set holds further columns written with the change
	set map[string]any
}

// apply runs the change on the row matched by where and reports whether the
// row was changed.
//
// Postgres gets a relative update with the floor in the WHERE clause. On
// sqlite the row is read and rewritten inside the caller's transaction, which
// sqlite runs serializably.
func (c amountChange) apply(db *gorm.DB, where string, args ...any) (bool, error) {
	values := make(map[string]any, len(c.set)+1)
	for column, value := range c.set {
		values[column] = value
	}

	if !textAmounts(db) {
		query := db.Table(c.table).Where(where, args...)
		if c.floor && c.delta.IsNegative() {
			query = query.Where(c.column+" >= ?", c.delta.Neg())
		}
		values[c.column] = gorm.Expr(c.column+" + ?", c.delta)
		result := query.Updates(values)
		return result.RowsAffected > 0, result.Error
	}

	current, found, err := readAmount(db, c.table, c.column, where, args...)
	if err != nil || !found {
		return false, err
	}
	next := current.Add(c.delta)
	if c.floor && next.IsNegative() {
		return false, nil
	}

	values[c.column] = next
	result := db.Table(c.table).Where(where, args...).Updates(values)
	return result.RowsAffected > 0, result.Error
}

// readAmount loads one amount column of the row matched by where
func readAmount(db *gorm.DB, table, column, where string, args ...any) (decimal.Decimal, bool, error) {
	var values []decimal.Decimal
	if err := db.Table(table).Where(where, args...).Limit(1).Pluck(column, &values).Error; err != nil {
		return decimal.Zero, false, err
	}
	if len(values) == 0 {
		return decimal.Zero, false, nil
	}
	return values[0], true, nil
}
