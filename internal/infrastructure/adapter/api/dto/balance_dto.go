package dto

import (
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// RegisterUserRequest represents the API request for registering a user
type RegisterUserRequest struct {
	UserID     uint64 `json:"userId" binding:"required,gt=0"`
	FirstName  string `json:"firstName" binding:"required,max=100"`
	LastName   string `json:"lastName" binding:"required,max=100"`
	MiddleName string `json:"middleName" binding:"max=100"`
	BirthDate  string `json:"birthDate" binding:"required"` // DD.MM.YYYY
	Email      string `json:"email" binding:"required,email,max=255"`
	Phone      string `json:"phone" binding:"required,max=20"`
}

// UserResponse represents a user's profile and balance
type UserResponse struct {
	UserID     uint64    `json:"userId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	BirthDate  string    `json:"birthDate"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Balance    string    `json:"balance"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserResponse maps a user to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:     user.ID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		MiddleName: user.MiddleName,
		BirthDate:  user.BirthDate,
		Email:      user.Email,
		Phone:      user.Phone,
		Balance:    user.FormattedBalance(),
		CreatedAt:  user.CreatedAt,
	}
}

// HoldingResponse is one line of a portfolio
type HoldingResponse struct {
	AssetID uint64 `json:"assetId"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Amount  string `json:"amount"`
	Rate    string `json:"rate"`
	Value   string `json:"value"`
}

// PortfolioResponse represents the user's holdings priced at current rates
type PortfolioResponse struct {
	UserID     uint64            `json:"userId"`
	Holdings   []HoldingResponse `json:"holdings"`
	TotalValue string            `json:"totalValue"`
}

// NewPortfolioResponse maps a portfolio to its API representation
func NewPortfolioResponse(portfolio *entity.Portfolio) PortfolioResponse {
	holdings := make([]HoldingResponse, 0, len(portfolio.Items))
	for _, item := range portfolio.Items {
		holdings = append(holdings, HoldingResponse{
			AssetID: item.AssetID,
			Name:    item.Name,
			Symbol:  item.Symbol,
			Amount:  entity.FormatQuantity(item.Amount),
			Rate:    item.Rate.String(),
			Value:   entity.FormatMoney(item.Value),
		})
	}

	return PortfolioResponse{
		UserID:     portfolio.UserID,
		Holdings:   holdings,
		TotalValue: entity.FormatMoney(portfolio.TotalValue),
	}
}
