package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Exchange    ExchangeConfig  `mapstructure:"exchange"`
	Admin       AdminConfig     `mapstructure:"admin"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	Notifier    NotifierConfig  `mapstructure:"notifier"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
	SlowThreshold   time.Duration `mapstructure:"slow_threshold"`
	IsolationLevel  string        `mapstructure:"isolation_level"`
	LogLevel        string        `mapstructure:"log_level"`
	RetryAttempts   int           `mapstructure:"retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"retry_delay"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// ExchangeConfig contains the ledger's business limits. Amounts are decimal strings.
type ExchangeConfig struct {
	SignupBonus            string `mapstructure:"signup_bonus"`
	MinRequestAmount       string `mapstructure:"min_request_amount"`
	MaxRequestAmount       string `mapstructure:"max_request_amount"`
	AllowWithdrawOverdraft bool   `mapstructure:"allow_withdraw_overdraft"`
	PriceHistoryDays       int    `mapstructure:"price_history_days"`
	CorrelationRetries     int    `mapstructure:"correlation_retries"`
	SeedDemoAssets         bool   `mapstructure:"seed_demo_assets"`
}

// AdminConfig lists the privileged users
type AdminConfig struct {
	UserIDs  []uint64      `mapstructure:"user_ids"`
	Email    string        `mapstructure:"email"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// SchedulerConfig holds cron specs for background jobs; an empty spec disables the job
type SchedulerConfig struct {
	PendingDigestSpec string `mapstructure:"pending_digest_spec"`
	PoolReportSpec    string `mapstructure:"pool_report_spec"`
}

// NotifierConfig selects where ledger events go
type NotifierConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // publish to redis; otherwise events are logged
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// SignupBonusAmount returns the parsed signup bonus
func (e ExchangeConfig) SignupBonusAmount() decimal.Decimal {
	return mustDecimal(e.SignupBonus)
}

// MinRequest returns the parsed minimum request amount
func (e ExchangeConfig) MinRequest() decimal.Decimal {
	return mustDecimal(e.MinRequestAmount)
}

// MaxRequest returns the parsed maximum request amount
func (e ExchangeConfig) MaxRequest() decimal.Decimal {
	return mustDecimal(e.MaxRequestAmount)
}

// mustDecimal parses a value already checked by Validate
func mustDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}

	amounts := map[string]string{
		"exchange.signup_bonus":       c.Exchange.SignupBonus,
		"exchange.min_request_amount": c.Exchange.MinRequestAmount,
		"exchange.max_request_amount": c.Exchange.MaxRequestAmount,
	}
	for key, value := range amounts {
		d, err := decimal.NewFromString(value)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s is not a decimal: %q", key, value))
			continue
		}
		if d.IsNegative() {
			problems = append(problems, fmt.Errorf("%s must not be negative", key))
		}
	}
	if c.Exchange.MinRequest().GreaterThan(c.Exchange.MaxRequest()) {
		problems = append(problems, errors.New("exchange.min_request_amount exceeds exchange.max_request_amount"))
	}
	if c.Exchange.CorrelationRetries < 1 {
		problems = append(problems, errors.New("exchange.correlation_retries must be at least 1"))
	}

	if len(c.Admin.UserIDs) == 0 && c.Admin.Email == "" {
		problems = append(problems, errors.New("admin.user_ids or admin.email must name at least one administrator"))
	}

	if c.Notifier.Enabled && c.Notifier.Addr == "" {
		problems = append(problems, errors.New("notifier.addr is required when the notifier is enabled"))
	}

	return errors.Join(problems...)
}
