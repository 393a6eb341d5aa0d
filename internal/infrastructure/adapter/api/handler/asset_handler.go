package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AssetHandler serves the asset catalog and its admin edits
type AssetHandler struct {
	assetUseCase usecase.AssetUseCase
	logger       coreport.Logger
}

// NewAssetHandler creates a new asset handler instance
func NewAssetHandler(assetUseCase usecase.AssetUseCase, logger coreport.Logger) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
		logger:       logger,
	}
}

// List handles the GET /api/v1/assets endpoint
func (h *AssetHandler) List(c *gin.Context) {
	h.list(c, false)
}

// AdminList handles the GET /api/v1/admin/assets endpoint
func (h *AssetHandler) AdminList(c *gin.Context) {
	h.list(c, true)
}

func (h *AssetHandler) list(c *gin.Context, includePrivate bool) {
	views, err := h.assetUseCase.List(c.Request.Context(), includePrivate)
	if err != nil {
		respondError(c, h.logger, "list_assets", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAssetList(views))
}

// Get handles the GET /api/v1/assets/{assetId} endpoint
func (h *AssetHandler) Get(c *gin.Context) {
	assetID, ok := parseIDParam(c, "assetId", errs.ErrInvalidRequest)
	if !ok {
		return
	}

	view, err := h.assetUseCase.Get(c.Request.Context(), assetID, false)
	if err != nil {
		respondError(c, h.logger, "get_asset", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAssetResponse(*view))
}

// History handles the GET /api/v1/assets/{assetId}/history endpoint
func (h *AssetHandler) History(c *gin.Context) {
	assetID, ok := parseIDParam(c, "assetId", errs.ErrInvalidRequest)
	if !ok {
		return
	}

	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	points, err := h.assetUseCase.PriceHistory(c.Request.Context(), assetID, query.Days)
	if err != nil {
		respondError(c, h.logger, "price_history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceHistoryResponse(assetID, points))
}

// Create handles the POST /api/v1/admin/assets endpoint
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	asset, err := h.assetUseCase.Create(c.Request.Context(), actorID(c), usecase.CreateAssetRequest{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Rate:        req.Rate,
		TotalSupply: req.TotalSupply,
	})
	if err != nil {
		respondError(c, h.logger, "create_asset", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAssetResponse(asset.View(true)))
}

// Update handles the PATCH /api/v1/admin/assets/{assetId} endpoint
func (h *AssetHandler) Update(c *gin.Context) {
	assetID, ok := parseIDParam(c, "assetId", errs.ErrInvalidRequest)
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	asset, err := h.assetUseCase.Update(c.Request.Context(), actorID(c), assetID, usecase.UpdateAssetRequest{
		Rate:            req.Rate,
		TotalSupply:     req.TotalSupply,
		AvailableSupply: req.AvailableSupply,
	})
	if err != nil {
		respondError(c, h.logger, "update_asset", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAssetResponse(asset.View(true)))
}
