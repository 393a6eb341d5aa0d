package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/exchange-ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		FirstName:  "Ivan",
		LastName:   "Petrov",
		MiddleName: "Sergeevich",
		BirthDate:  "15.04.1990",
		Email:      "Ivan.Petrov@example.com",
		Phone:      "+7 (912) 345-67-89",
	}
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	bonus := decimal.NewFromInt(250)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(42, validProfile(), bonus, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), user.ID)
		assert.True(t, bonus.Equal(user.Balance))
		assert.Equal(t, "250.00", user.FormattedBalance())
		assert.Equal(t, "ivan.petrov@example.com", user.Email)
		assert.Equal(t, "+79123456789", user.Phone)
		assert.Equal(t, "Ivan Sergeevich Petrov", user.FullName())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, validProfile(), bonus, mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Negative bonus", func(t *testing.T) {
		_, err := NewUser(1, validProfile(), decimal.NewFromInt(-1), mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Invalid profiles", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(p *Profile)
		}{
			{"Short first name", func(p *Profile) { p.FirstName = "I" }},
			{"Missing last name", func(p *Profile) { p.LastName = "" }},
			{"Birth date wrong layout", func(p *Profile) { p.BirthDate = "1990-04-15" }},
			{"Birth date in the future", func(p *Profile) { p.BirthDate = "01.01.2030" }},
			{"Email without domain", func(p *Profile) { p.Email = "ivan@" }},
			{"Phone too short", func(p *Profile) { p.Phone = "12345" }},
			{"Phone with letters", func(p *Profile) { p.Phone = "+7912abc6789" }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				profile := validProfile()
				tc.mutate(&profile)

				user, err := NewUser(1, profile, bonus, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidProfile)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Middle name is optional", func(t *testing.T) {
		profile := validProfile()
		profile.MiddleName = ""

		user, err := NewUser(1, profile, bonus, mockTime)
		require.NoError(t, err)
		assert.Equal(t, "Ivan Petrov", user.FullName())
	})
}

func TestUserCanAfford(t *testing.T) {
	user := &User{ID: 1, Balance: decimal.NewFromInt(1000)}

	assert.True(t, user.CanAfford(decimal.NewFromInt(400)))
	assert.True(t, user.CanAfford(decimal.NewFromInt(1000)))
	assert.False(t, user.CanAfford(decimal.RequireFromString("1000.01")))
}
