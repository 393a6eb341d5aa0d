package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAppConfig(t *testing.T) {
	conf := &config.Config{
		Database: config.DatabaseConfig{
			Driver:         DriverSQLite,
			Database:       "ledger.db",
			MaxOpenConns:   1,
			SlowThreshold:  time.Second,
			IsolationLevel: "serializable",
		},
	}

	dbConf := FromAppConfig(conf)

	require.NoError(t, dbConf.Validate())
	assert.Equal(t, DriverSQLite, dbConf.Driver)
	assert.Equal(t, "ledger.db", dbConf.DSN())
	assert.Equal(t, 1, dbConf.MaxOpenConns)
	assert.Equal(t, 25, dbConf.MaxIdleConns)
	assert.Equal(t, time.Second, dbConf.SlowThreshold)
	assert.Equal(t, 10*time.Second, dbConf.QueryTimeout)
}

func TestConfigValidate(t *testing.T) {
	t.Run("Postgres requires a host", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Username = "ledger"
		cfg.Database = "exchange_ledger"
		require.NoError(t, cfg.Validate())

		cfg.Host = ""
		assert.ErrorContains(t, cfg.Validate(), "host")
	})

	t.Run("Unknown isolation level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Driver = DriverSQLite
		cfg.Database = ":memory:"
		cfg.IsolationLevel = "READ UNCOMMITTED"

		assert.ErrorContains(t, cfg.Validate(), "isolation level")
	})

	t.Run("Unknown driver", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Driver = "mysql"

		assert.ErrorContains(t, cfg.Validate(), "unsupported database driver")
	})

	t.Run("Postgres DSN", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Username = "ledger"
		cfg.Password = "secret"
		cfg.Database = "exchange_ledger"

		assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=exchange_ledger sslmode=disable", cfg.DSN())
	})
}
