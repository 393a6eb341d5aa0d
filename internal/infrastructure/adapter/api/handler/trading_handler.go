package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TradingHandler handles buy, sell, quote and portfolio requests
type TradingHandler struct {
	tradingUseCase usecase.TradingUseCase
	logger         coreport.Logger
}

// NewTradingHandler creates a new trading handler instance
func NewTradingHandler(tradingUseCase usecase.TradingUseCase, logger coreport.Logger) *TradingHandler {
	return &TradingHandler{
		tradingUseCase: tradingUseCase,
		logger:         logger,
	}
}

// Buy handles the POST /api/v1/users/{userId}/buy endpoint
func (h *TradingHandler) Buy(c *gin.Context) {
	h.trade(c, "buy", h.tradingUseCase.Buy)
}

// Sell handles the POST /api/v1/users/{userId}/sell endpoint
func (h *TradingHandler) Sell(c *gin.Context) {
	h.trade(c, "sell", h.tradingUseCase.Sell)
}

func (h *TradingHandler) trade(
	c *gin.Context,
	operation string,
	execute func(context.Context, usecase.TradeRequest) (*entity.TradeResult, error),
) {
	userID, ok := parseIDParam(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := execute(c.Request.Context(), usecase.TradeRequest{
		UserID:  userID,
		AssetID: req.AssetID,
		Amount:  req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTradeResponse(result))
}

// Quote handles the GET /api/v1/users/{userId}/quote endpoint
func (h *TradingHandler) Quote(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	var query dto.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.tradingUseCase.Quote(c.Request.Context(), userID, query.AssetID, entity.TradeSide(query.Side), query.Percent)
	if err != nil {
		respondError(c, h.logger, "quote", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Portfolio handles the GET /api/v1/users/{userId}/holdings endpoint
func (h *TradingHandler) Portfolio(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	portfolio, err := h.tradingUseCase.Portfolio(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "portfolio", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPortfolioResponse(portfolio))
}
