package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and constraints
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// checkConstraints mirror the supply and holding invariants in the store
var checkConstraints = []struct {
	table      string
	name       string
	expression string
}{
	{"assets", "chk_assets_available_supply", "available_supply >= 0 AND available_supply <= total_supply"},
	{"assets", "chk_assets_rate", "rate > 0"},
	{"holdings", "chk_holdings_amount", "amount >= 0"},
	{"transactions", "chk_transactions_amount", "amount > 0"},
	{"transactions", "chk_transactions_status", "status IN ('pending', 'completed', 'rejected', 'cancelled')"},
}

// CreateAdvancedIndexes creates PostgreSQL indexes and check constraints
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)

	for _, c := range checkConstraints {
		if err := db.Exec(`
			DO $$ BEGIN
				ALTER TABLE ` + c.table + ` ADD CONSTRAINT ` + c.name + ` CHECK (` + c.expression + `);
			EXCEPTION WHEN duplicate_object THEN NULL;
			END $$;
		`).Error; err != nil {
			m.logger.Error("Failed to add check constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	// BRIN index for created_at (more efficient for append-only temporal data)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_price_history_created_at_brin
		ON price_history USING BRIN (created_at)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on price_history", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings; failures are logged only
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// Rows are updated in place on resolution, balances and supply change on every trade
	for _, table := range []string{"transactions", "users", "assets", "holdings"} {
		if err := db.Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}

	if err := db.Exec(`
		ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000
	`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
