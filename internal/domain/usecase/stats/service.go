package stats

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/usecase"
)

// Dashboard parameters
const (
	TradingWindowDays = 30
	TopAssetsLimit    = 5
)

// Service builds the admin statistics dashboard
type Service struct {
	repo         persistence.StatsRepository
	authorizer   coreport.Authorizer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.StatsUseCase = (*Service)(nil)

// NewStatsService creates a new statistics service
func NewStatsService(
	repo persistence.StatsRepository,
	authorizer coreport.Authorizer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:         repo,
		authorizer:   authorizer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Snapshot aggregates users, recent ledger activity and the most held assets
func (s *Service) Snapshot(ctx context.Context, actorID uint64) (*entity.ExchangeStats, error) {
	if !s.authorizer.IsPrivileged(ctx, actorID) {
		return nil, errs.ErrForbidden
	}

	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)
	windowStart := now.AddDate(0, 0, -TradingWindowDays)

	users, err := s.repo.UserStats(ctx, dayStart, weekStart)
	if err != nil {
		return nil, s.fail("users", err)
	}

	trading, err := s.repo.TradingStats(ctx, windowStart)
	if err != nil {
		return nil, s.fail("trading", err)
	}
	trading.WindowDays = TradingWindowDays
	trading.WindowStarted = windowStart

	top, err := s.repo.TopAssets(ctx, TopAssetsLimit)
	if err != nil {
		return nil, s.fail("top_assets", err)
	}

	return &entity.ExchangeStats{
		Users:       users,
		Trading:     trading,
		TopAssets:   top,
		GeneratedAt: now,
	}, nil
}

func (s *Service) fail(section string, err error) error {
	s.logger.Error("Failed to build statistics", map[string]any{
		"section": section,
		"error":   err.Error(),
	})
	return err
}
