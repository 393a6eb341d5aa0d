package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// BirthDateLayout is the DD.MM.YYYY format users type their birth date in
const BirthDateLayout = "02.01.2006"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// Profile holds the registration details of a user
type Profile struct {
	FirstName  string
	LastName   string
	MiddleName string
	BirthDate  string // DD.MM.YYYY
	Email      string
	Phone      string
}

// User is a registered exchange participant with a fiat balance
type User struct {
	ID uint64 // Chat platform identifier
	Profile
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser validates the profile and creates a user credited with the signup bonus
func NewUser(id uint64, profile Profile, signupBonus decimal.Decimal, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if signupBonus.IsNegative() {
		return nil, fmt.Errorf("%w: signup bonus cannot be negative", errs.ErrInvalidAmount)
	}

	profile = profile.normalized()
	if err := profile.Validate(timeProvider.Now()); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Profile:   profile,
		Balance:   signupBonus,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FullName joins first, middle and last name the way they are shown to admins
func (p Profile) FullName() string {
	parts := []string{p.FirstName}
	if p.MiddleName != "" {
		parts = append(parts, p.MiddleName)
	}
	parts = append(parts, p.LastName)
	return strings.Join(parts, " ")
}

// Validate checks the profile fields; now bounds the birth date
func (p Profile) Validate(now time.Time) error {
	if len([]rune(p.FirstName)) < 2 {
		return fmt.Errorf("%w: first name must have at least 2 characters", errs.ErrInvalidProfile)
	}
	if len([]rune(p.LastName)) < 2 {
		return fmt.Errorf("%w: last name must have at least 2 characters", errs.ErrInvalidProfile)
	}

	birthDate, err := time.Parse(BirthDateLayout, p.BirthDate)
	if err != nil {
		return fmt.Errorf("%w: birth date must use DD.MM.YYYY", errs.ErrInvalidProfile)
	}
	if birthDate.After(now) {
		return fmt.Errorf("%w: birth date is in the future", errs.ErrInvalidProfile)
	}

	if !emailPattern.MatchString(p.Email) {
		return fmt.Errorf("%w: malformed email", errs.ErrInvalidProfile)
	}
	if !phonePattern.MatchString(p.Phone) {
		return fmt.Errorf("%w: phone must contain 10 to 15 digits", errs.ErrInvalidProfile)
	}

	return nil
}

func (p Profile) normalized() Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.MiddleName = strings.TrimSpace(p.MiddleName)
	p.BirthDate = strings.TrimSpace(p.BirthDate)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(p.Phone))
	return p
}

// CanAfford reports whether the balance covers cost
func (u *User) CanAfford(cost decimal.Decimal) bool {
	return u.Balance.GreaterThanOrEqual(cost)
}

// FormattedBalance returns the balance with two decimal places
func (u *User) FormattedBalance() string {
	return FormatMoney(u.Balance)
}
