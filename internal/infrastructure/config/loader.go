package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment override, e.g. EX_DATABASE_HOST
const EnvPrefix = "EX"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"/etc/exchange-ledger",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// Precedence: environment variables, then the YAML file, then defaults.
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	// Every key has a default so that AutomaticEnv can override it
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s.yaml found, using defaults and environment\n", env)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	return lastError
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", Development)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.read_header_timeout", "5s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Database defaults
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "exchange_ledger")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "5m")
	v.SetDefault("database.query_timeout", "10s")
	v.SetDefault("database.slow_threshold", "200ms")
	v.SetDefault("database.isolation_level", "READ COMMITTED")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.retry_attempts", 3)
	v.SetDefault("database.retry_delay", "2s")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	// Exchange defaults
	v.SetDefault("exchange.signup_bonus", "250")
	v.SetDefault("exchange.min_request_amount", "100")
	v.SetDefault("exchange.max_request_amount", "1000000")
	v.SetDefault("exchange.allow_withdraw_overdraft", false)
	v.SetDefault("exchange.price_history_days", 30)
	v.SetDefault("exchange.correlation_retries", 3)
	v.SetDefault("exchange.seed_demo_assets", false)

	// Admin defaults
	v.SetDefault("admin.user_ids", []uint64{})
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.cache_ttl", "5m")

	// Scheduler defaults
	v.SetDefault("scheduler.pending_digest_spec", "@every 15m")
	v.SetDefault("scheduler.pool_report_spec", "@every 1m")

	// Notifier defaults
	v.SetDefault("notifier.enabled", false)
	v.SetDefault("notifier.addr", "localhost:6379")
	v.SetDefault("notifier.password", "")
	v.SetDefault("notifier.db", 0)
	v.SetDefault("notifier.channel", "exchange-ledger.events")
}

// getEnvironment determines the environment to use based on EX_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short names used by deployment manifests onto config keys
func processEnvOverrides(v *viper.Viper) {
	aliases := map[string]string{
		"EX_DB_HOST":        "database.host",
		"EX_DB_PORT":        "database.port",
		"EX_DB_USERNAME":    "database.username",
		"EX_DB_PASSWORD":    "database.password",
		"EX_DB_NAME":        "database.database",
		"EX_DB_SSL_MODE":    "database.ssl_mode",
		"EX_REDIS_ADDR":     "notifier.addr",
		"EX_REDIS_PASSWORD": "notifier.password",
		"EX_ADMIN_USER_IDS": "admin.user_ids",
	}
	for env, key := range aliases {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}
}
