package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RequestHandler handles deposit/withdraw requests and their resolution
type RequestHandler struct {
	requestUseCase usecase.RequestUseCase
	logger         coreport.Logger
}

// NewRequestHandler creates a new request handler instance
func NewRequestHandler(requestUseCase usecase.RequestUseCase, logger coreport.Logger) *RequestHandler {
	return &RequestHandler{
		requestUseCase: requestUseCase,
		logger:         logger,
	}
}

// Create handles the POST /api/v1/users/{userId}/requests endpoint
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.requestUseCase.Create(c.Request.Context(), userID, entity.TransactionKind(req.Kind), req.Amount)
	if err != nil {
		respondError(c, h.logger, "create_request", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// ListForUser handles the GET /api/v1/users/{userId}/requests endpoint
func (h *RequestHandler) ListForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", errs.ErrInvalidUserID)
	if !ok {
		return
	}

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	txns, err := h.requestUseCase.ListForUser(c.Request.Context(), userID, query.Limit)
	if err != nil {
		respondError(c, h.logger, "list_user_requests", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionList(txns))
}

// Resolve handles the POST /api/v1/admin/requests/{requestId}/resolve endpoint
func (h *RequestHandler) Resolve(c *gin.Context) {
	requestID, ok := parseIDParam(c, "requestId", errs.ErrInvalidRequest)
	if !ok {
		return
	}

	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.requestUseCase.Resolve(c.Request.Context(), actorID(c), requestID, entity.Decision(req.Decision))
	if err != nil {
		respondError(c, h.logger, "resolve_request", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResolveResponse(result))
}

// ListPending handles the GET /api/v1/admin/requests/pending endpoint
func (h *RequestHandler) ListPending(c *gin.Context) {
	views, err := h.requestUseCase.ListPending(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, h.logger, "list_pending", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRequestViewList(views))
}

// ListRecent handles the GET /api/v1/admin/requests endpoint
func (h *RequestHandler) ListRecent(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	views, err := h.requestUseCase.ListRecent(c.Request.Context(), actorID(c), query.Limit)
	if err != nil {
		respondError(c, h.logger, "list_recent", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRequestViewList(views))
}
