package dto

import (
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// CreateRequestRequest represents the API request for opening a deposit or withdraw request
type CreateRequestRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=deposit withdraw"`
	Amount string `json:"amount" binding:"required,decimalamount"`
}

// ResolveRequest represents an admin decision on a pending request
type ResolveRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

// TransactionResponse represents a ledger transaction
type TransactionResponse struct {
	ID               uint64     `json:"id"`
	UniqueID         string     `json:"uniqueId"`
	PaymentReference string     `json:"paymentReference,omitempty"`
	UserID           uint64     `json:"userId"`
	Kind             string     `json:"kind"`
	Amount           string     `json:"amount"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	ProcessedAt      *time.Time `json:"processedAt,omitempty"`
	ProcessedBy      *uint64    `json:"processedBy,omitempty"`
}

// NewTransactionResponse maps a transaction to its API representation
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          txn.ID,
		UniqueID:    txn.UniqueID,
		UserID:      txn.UserID,
		Kind:        string(txn.Kind),
		Amount:      entity.FormatMoney(txn.Amount),
		Status:      string(txn.Status),
		CreatedAt:   txn.CreatedAt,
		ProcessedAt: txn.ProcessedAt,
		ProcessedBy: txn.ProcessedBy,
	}
	if txn.Kind.IsRequest() {
		resp.PaymentReference = txn.PaymentReference()
	}
	return resp
}

// NewTransactionList maps a list of transactions
func NewTransactionList(txns []entity.Transaction) []TransactionResponse {
	list := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		list = append(list, NewTransactionResponse(&txns[i]))
	}
	return list
}

// RequestViewResponse is a transaction with its owner's identity, as shown to admins
type RequestViewResponse struct {
	TransactionResponse
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// NewRequestViewList maps admin request listings
func NewRequestViewList(views []entity.RequestView) []RequestViewResponse {
	list := make([]RequestViewResponse, 0, len(views))
	for i := range views {
		view := views[i]
		profile := entity.Profile{FirstName: view.FirstName, LastName: view.LastName}
		list = append(list, RequestViewResponse{
			TransactionResponse: NewTransactionResponse(&view.Transaction),
			UserName:            profile.FullName(),
			Email:               view.Email,
		})
	}
	return list
}

// ResolveResponse represents the outcome of a resolution
type ResolveResponse struct {
	Request TransactionResponse `json:"request"`
	Outcome string              `json:"outcome"`
	Reason  string              `json:"reason,omitempty"`
	Balance string              `json:"balance"`
}

// NewResolveResponse maps a resolution result
func NewResolveResponse(result *entity.ResolveResult) ResolveResponse {
	return ResolveResponse{
		Request: NewTransactionResponse(result.Request),
		Outcome: string(result.Outcome),
		Reason:  result.Reason,
		Balance: entity.FormatMoney(result.BalanceAfter),
	}
}

// TradeRequest represents the API request for a buy or a sell
type TradeRequest struct {
	AssetID uint64 `json:"assetId" binding:"required,gt=0"`
	Amount  string `json:"amount" binding:"required,decimalamount"`
}

// TradeResponse represents an executed trade
type TradeResponse struct {
	Side            string `json:"side"`
	UserID          uint64 `json:"userId"`
	AssetID         uint64 `json:"assetId"`
	Symbol          string `json:"symbol"`
	Amount          string `json:"amount"`
	Rate            string `json:"rate"`
	Total           string `json:"total"`
	Balance         string `json:"balance"`
	Holding         string `json:"holding"`
	AvailableSupply string `json:"availableSupply"`
	ReceiptID       string `json:"receiptId,omitempty"`
}

// NewTradeResponse maps a trade result
func NewTradeResponse(result *entity.TradeResult) TradeResponse {
	return TradeResponse{
		Side:            string(result.Side),
		UserID:          result.UserID,
		AssetID:         result.AssetID,
		Symbol:          result.Symbol,
		Amount:          entity.FormatQuantity(result.Amount),
		Rate:            result.Rate.String(),
		Total:           entity.FormatMoney(result.Total),
		Balance:         entity.FormatMoney(result.Balance),
		Holding:         entity.FormatQuantity(result.HoldingAmount),
		AvailableSupply: entity.FormatQuantity(result.AvailableSupply),
		ReceiptID:       result.ReceiptID,
	}
}

// QuoteQuery carries the percentage-of-max choice
type QuoteQuery struct {
	AssetID uint64 `form:"assetId" binding:"required,gt=0"`
	Side    string `form:"side" binding:"required,oneof=buy sell"`
	Percent int64  `form:"percent" binding:"required"`
}

// QuoteResponse represents an advisory trade amount
type QuoteResponse struct {
	Side      string `json:"side"`
	AssetID   uint64 `json:"assetId"`
	Percent   int64  `json:"percent"`
	MaxAmount string `json:"maxAmount"`
	Amount    string `json:"amount"`
	Rate      string `json:"rate"`
	Total     string `json:"total"`
}

// NewQuoteResponse maps a quote
func NewQuoteResponse(quote *entity.TradeQuote) QuoteResponse {
	return QuoteResponse{
		Side:      string(quote.Side),
		AssetID:   quote.AssetID,
		Percent:   quote.Percent,
		MaxAmount: entity.FormatQuantity(quote.MaxAmount),
		Amount:    entity.FormatQuantity(quote.Amount),
		Rate:      quote.Rate.String(),
		Total:     entity.FormatMoney(quote.Total),
	}
}

// ListQuery bounds list endpoints
type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=100"`
}
