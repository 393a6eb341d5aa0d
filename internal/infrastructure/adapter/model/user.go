package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement:false"` // Chat platform identifier
	FirstName  string    `gorm:"not null;size:100"`
	LastName   string    `gorm:"not null;size:100"`
	MiddleName string    `gorm:"size:100"`
	BirthDate  string    `gorm:"not null;size:10"`
	Email      string    `gorm:"not null;size:255;uniqueIndex:idx_users_email"`
	Phone      string    `gorm:"not null;size:20"`
	Balance    Amount    `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
