package trading

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
)

// DefaultCorrelationRetries bounds how many fresh receipt codes a sale tries
const DefaultCorrelationRetries = 3

// Service is the trading engine. Every buy and sell runs as one unit of work
// against the store; the engine keeps no state between calls and has no notion
// of roles.
type Service struct {
	uow                persistence.UnitOfWork
	codes              coreport.CorrelationCodeGenerator
	notifier           coreport.Notifier
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	correlationRetries int
}

var _ usecase.TradingUseCase = (*Service)(nil)

// NewTradingService creates a new trading engine
func NewTradingService(
	uow persistence.UnitOfWork,
	codes coreport.CorrelationCodeGenerator,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	correlationRetries int,
) *Service {
	if correlationRetries <= 0 {
		correlationRetries = DefaultCorrelationRetries
	}

	return &Service{
		uow:                uow,
		codes:              codes,
		notifier:           notifier,
		timeProvider:       timeProvider,
		logger:             logger,
		correlationRetries: correlationRetries,
	}
}

// publish hands an event to the notifier once the unit of work has committed.
// A failed notification never undoes a committed trade.
func (s *Service) publish(ctx context.Context, eventType coreport.EventType, userID uint64, payload map[string]any) {
	event := coreport.Event{
		Type:       eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: s.timeProvider.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish trade event", map[string]any{
			"event":   string(eventType),
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

// logFailure logs a failed trade at a level matching its class
func (s *Service) logFailure(operation string, req usecase.TradeRequest, started time.Time, err error) {
	fields := map[string]any{
		"operation": operation,
		"user_id":   req.UserID,
		"asset_id":  req.AssetID,
		"amount":    req.Amount,
		"duration":  s.timeProvider.Since(started).String(),
		"error":     err.Error(),
	}

	var tradeErr *errs.TradeError
	if errors.As(err, &tradeErr) {
		for k, v := range tradeErr.LogFields() {
			fields[k] = v
		}
	}

	if errs.IsStorageError(err) {
		s.logger.Error("Trade failed", fields)
		return
	}
	s.logger.Info("Trade rejected", fields)
}
