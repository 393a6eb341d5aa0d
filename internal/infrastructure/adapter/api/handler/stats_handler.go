package handler

import (
	"context"
	"net/http"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves the admin dashboard and the health check
type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
	healthCheck  func(ctx context.Context) error
	logger       coreport.Logger
}

// NewStatsHandler creates a new stats handler instance
func NewStatsHandler(
	statsUseCase usecase.StatsUseCase,
	healthCheck func(ctx context.Context) error,
	logger coreport.Logger,
) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
		healthCheck:  healthCheck,
		logger:       logger,
	}
}

// Snapshot handles the GET /api/v1/admin/stats endpoint
func (h *StatsHandler) Snapshot(c *gin.Context) {
	stats, err := h.statsUseCase.Snapshot(c.Request.Context(), actorID(c))
	if err != nil {
		respondError(c, h.logger, "stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Health handles the GET /health endpoint
func (h *StatsHandler) Health(c *gin.Context) {
	if err := h.healthCheck(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrDatabaseConnection),
			Message: "database unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
