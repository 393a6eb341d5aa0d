package dto

import (
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
)

// CreateAssetRequest represents the API request for listing an asset
type CreateAssetRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Symbol      string `json:"symbol" binding:"required,assetsymbol"`
	Rate        string `json:"rate" binding:"required,decimalamount"`
	TotalSupply string `json:"totalSupply" binding:"required,decimalamount"`
}

// UpdateAssetRequest represents an admin edit; omitted fields are left unchanged
type UpdateAssetRequest struct {
	Rate            *string `json:"rate" binding:"omitempty,decimalamount"`
	TotalSupply     *string `json:"totalSupply" binding:"omitempty,decimalamount"`
	AvailableSupply *string `json:"availableSupply" binding:"omitempty,decimalamount"`
}

// AssetResponse represents an asset. Total supply and market cap are only
// present on the admin view.
type AssetResponse struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	Rate            string  `json:"rate"`
	AvailableSupply string  `json:"availableSupply"`
	TotalSupply     *string `json:"totalSupply,omitempty"`
	MarketCap       *string `json:"marketCap,omitempty"`
}

// NewAssetResponse maps an asset view
func NewAssetResponse(view entity.AssetView) AssetResponse {
	resp := AssetResponse{
		ID:              view.ID,
		Name:            view.Name,
		Symbol:          view.Symbol,
		Rate:            view.Rate.String(),
		AvailableSupply: entity.FormatQuantity(view.AvailableSupply),
	}
	if view.TotalSupply != nil {
		total := entity.FormatQuantity(*view.TotalSupply)
		resp.TotalSupply = &total
	}
	if view.MarketCap != nil {
		marketCap := entity.FormatMoney(*view.MarketCap)
		resp.MarketCap = &marketCap
	}
	return resp
}

// NewAssetList maps a list of asset views
func NewAssetList(views []entity.AssetView) []AssetResponse {
	list := make([]AssetResponse, 0, len(views))
	for _, view := range views {
		list = append(list, NewAssetResponse(view))
	}
	return list
}

// PricePoint is one rate observation
type PricePoint struct {
	Rate string    `json:"rate"`
	At   time.Time `json:"at"`
}

// PriceHistoryResponse represents an asset's rate history, oldest first
type PriceHistoryResponse struct {
	AssetID uint64       `json:"assetId"`
	Points  []PricePoint `json:"points"`
}

// NewPriceHistoryResponse maps history points
func NewPriceHistoryResponse(assetID uint64, points []entity.PriceHistoryPoint) PriceHistoryResponse {
	list := make([]PricePoint, 0, len(points))
	for _, p := range points {
		list = append(list, PricePoint{Rate: p.Rate.String(), At: p.CreatedAt})
	}
	return PriceHistoryResponse{AssetID: assetID, Points: list}
}

// HistoryQuery selects the price history window
type HistoryQuery struct {
	Days int `form:"days" binding:"omitempty,gte=1,lte=365"`
}
