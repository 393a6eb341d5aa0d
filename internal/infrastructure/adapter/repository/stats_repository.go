package repository

import (
	"context"
	"sort"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatsRepository runs the aggregate queries behind the admin dashboard
type StatsRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewStatsRepository creates a new StatsRepository instance
func NewStatsRepository(db *gorm.DB, logger coreport.Logger) *StatsRepository {
	return &StatsRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func (r *StatsRepository) fail(operation string, err error) error {
	r.logger.Error("Failed to compute statistics", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return r.errorMapper.MapError(err, EntityTypeUser, operation)
}

// UserStats counts registrations and sums balances
func (r *StatsRepository) UserStats(ctx context.Context, dayStart, weekStart time.Time) (entity.UserStats, error) {
	db := r.db.WithContext(ctx)

	var totals struct {
		Total        int64
		TotalBalance decimal.Decimal
	}
	if textAmounts(db) {
		var balances []decimal.Decimal
		if err := db.Model(&model.User{}).Pluck("balance", &balances).Error; err != nil {
			return entity.UserStats{}, r.fail("user totals", err)
		}
		totals.Total = int64(len(balances))
		totals.TotalBalance = sum(balances)
	} else {
		result := db.Model(&model.User{}).
			Select("COUNT(*) AS total, COALESCE(SUM(balance), 0) AS total_balance").
			Scan(&totals)
		if result.Error != nil {
			return entity.UserStats{}, r.fail("user totals", result.Error)
		}
	}

	stats := entity.UserStats{
		Total:        totals.Total,
		TotalBalance: totals.TotalBalance,
	}

	if err := db.Model(&model.User{}).
		Where("created_at >= ?", dayStart).
		Count(&stats.NewToday).Error; err != nil {
		return entity.UserStats{}, r.fail("users today", err)
	}

	if err := db.Model(&model.User{}).
		Where("created_at >= ?", weekStart).
		Count(&stats.NewLastWeek).Error; err != nil {
		return entity.UserStats{}, r.fail("users this week", err)
	}

	return stats, nil
}

// TradingStats summarizes completed transactions created at or after since
func (r *StatsRepository) TradingStats(ctx context.Context, since time.Time) (entity.TradingStats, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("created_at >= ? AND status = ?", since, string(entity.StatusCompleted))

	if textAmounts(query) {
		var rows []struct {
			UserID uint64
			Amount decimal.Decimal
		}
		if err := query.Select("user_id, amount").Scan(&rows).Error; err != nil {
			return entity.TradingStats{}, r.fail("trading", err)
		}

		stats := entity.TradingStats{Transactions: int64(len(rows))}
		users := make(map[uint64]struct{})
		for _, row := range rows {
			stats.Volume = stats.Volume.Add(row.Amount)
			users[row.UserID] = struct{}{}
		}
		stats.UniqueUsers = int64(len(users))
		return stats, nil
	}

	var row struct {
		Transactions int64
		Volume       decimal.Decimal
		UniqueUsers  int64
	}
	result := query.
		Select("COUNT(*) AS transactions, COALESCE(SUM(amount), 0) AS volume, COUNT(DISTINCT user_id) AS unique_users").
		Scan(&row)
	if result.Error != nil {
		return entity.TradingStats{}, r.fail("trading", result.Error)
	}

	return entity.TradingStats{
		Transactions: row.Transactions,
		Volume:       row.Volume,
		UniqueUsers:  row.UniqueUsers,
	}, nil
}

// TopAssets ranks assets by the value users currently hold
func (r *StatsRepository) TopAssets(ctx context.Context, limit int) ([]entity.AssetStats, error) {
	db := r.db.WithContext(ctx)
	if textAmounts(db) {
		return r.topAssetsInGo(db, limit)
	}

	var rows []entity.AssetStats
	result := db.
		Table("assets").
		Select("assets.id AS asset_id, assets.name, assets.symbol, " +
			"COUNT(holdings.user_id) AS holders, " +
			"SUM(holdings.amount) AS held_amount, " +
			"SUM(holdings.amount) * assets.rate AS held_value").
		Joins("JOIN holdings ON holdings.asset_id = assets.id AND holdings.amount > 0").
		Group("assets.id, assets.name, assets.symbol, assets.rate").
		Order("held_value DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, r.fail("top assets", result.Error)
	}
	return rows, nil
}

// topAssetsInGo ranks assets from the raw holding rows for stores that keep amounts as text
func (r *StatsRepository) topAssetsInGo(db *gorm.DB, limit int) ([]entity.AssetStats, error) {
	var rows []struct {
		AssetID uint64
		Name    string
		Symbol  string
		Rate    decimal.Decimal
		Amount  decimal.Decimal
	}
	result := db.
		Table("holdings").
		Select("assets.id AS asset_id, assets.name, assets.symbol, assets.rate, holdings.amount").
		Joins("JOIN assets ON assets.id = holdings.asset_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, r.fail("top assets", result.Error)
	}

	byAsset := make(map[uint64]*entity.AssetStats)
	var ranked []*entity.AssetStats
	for _, row := range rows {
		if !row.Amount.IsPositive() {
			continue
		}
		stats, ok := byAsset[row.AssetID]
		if !ok {
			stats = &entity.AssetStats{AssetID: row.AssetID, Name: row.Name, Symbol: row.Symbol}
			byAsset[row.AssetID] = stats
			ranked = append(ranked, stats)
		}
		stats.Holders++
		stats.HeldAmount = stats.HeldAmount.Add(row.Amount)
		stats.HeldValue = stats.HeldValue.Add(row.Amount.Mul(row.Rate))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HeldValue.GreaterThan(ranked[j].HeldValue)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	top := make([]entity.AssetStats, 0, len(ranked))
	for _, stats := range ranked {
		top = append(top, *stats)
	}
	return top, nil
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, value := range values {
		total = total.Add(value)
	}
	return total
}
