package request

import (
	"context"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Workflow defaults
const (
	DefaultCorrelationRetries = 3
	DefaultRecentLimit        = 20
	MaxListLimit              = 100
)

// Config holds the business limits of the request workflow
type Config struct {
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	// AllowWithdrawOverdraft lets an approved withdraw drive the balance below
	// zero instead of auto-rejecting it
	AllowWithdrawOverdraft bool
	CorrelationRetries     int
}

// DefaultConfig returns the limits used when none are configured
func DefaultConfig() Config {
	return Config{
		MinAmount:          decimal.NewFromInt(100),
		MaxAmount:          decimal.NewFromInt(1000000),
		CorrelationRetries: DefaultCorrelationRetries,
	}
}

// Service drives deposit and withdraw requests from creation to their single
// terminal transition
type Service struct {
	uow          persistence.UnitOfWork
	authorizer   coreport.Authorizer
	codes        coreport.CorrelationCodeGenerator
	notifier     coreport.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var _ usecase.RequestUseCase = (*Service)(nil)

// NewRequestService creates a new request workflow
func NewRequestService(
	uow persistence.UnitOfWork,
	authorizer coreport.Authorizer,
	codes coreport.CorrelationCodeGenerator,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	if config.CorrelationRetries <= 0 {
		config.CorrelationRetries = DefaultCorrelationRetries
	}

	return &Service{
		uow:          uow,
		authorizer:   authorizer,
		codes:        codes,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "request_workflow"}),
		config:       config,
	}
}

func (s *Service) publish(ctx context.Context, eventType coreport.EventType, userID uint64, payload map[string]any) {
	event := coreport.Event{
		Type:       eventType,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: s.timeProvider.Now(),
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish request event", map[string]any{
			"event":   string(eventType),
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
