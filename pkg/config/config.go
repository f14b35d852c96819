package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is built once at process
// start and passed by reference into every component; nothing reads the
// environment after this point.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Polymarket API
	GammaAPIURL string
	CLOBAPIURL  string

	// CLOB credentials. PrivateKey is required only for commands that
	// place or cancel orders.
	PrivateKey    string
	FunderAddress string
	SignatureType int
	APIKey        string
	APISecret     string
	APIPassphrase string

	// Capital allocation
	CapitalPerMarket float64
	MaxMarkets       int

	// Ranking thresholds
	MinDaysToResolution float64
	MinDailyReward      float64
	MaxCompetitionScore float64

	// Quoting
	SpreadSafetyMargin float64

	// Fill-risk monitoring
	FillAlertThreshold float64
	RefreshInterval    time.Duration
	RescanInterval     time.Duration

	// Scan
	ScanPageLimit int

	// Notifications (Telegram)
	TelegramBotToken string
	TelegramChatID   string

	// Storage
	StorageMode  string // "postgres" or "console"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Polymarket API defaults
		GammaAPIURL: getEnvOrDefault("POLYMARKET_GAMMA_API_URL", "https://gamma-api.polymarket.com"),
		CLOBAPIURL:  getEnvOrDefault("POLYMARKET_CLOB_API_URL", "https://clob.polymarket.com"),

		// Credentials
		PrivateKey:    os.Getenv("PK"),
		FunderAddress: os.Getenv("FUNDER_ADDRESS"),
		SignatureType: getIntOrDefault("SIGNATURE_TYPE", 1), // 1 for Magic/email accounts
		APIKey:        os.Getenv("POLYMARKET_API_KEY"),
		APISecret:     os.Getenv("POLYMARKET_SECRET"),
		APIPassphrase: os.Getenv("POLYMARKET_PASSPHRASE"),

		// Capital defaults
		CapitalPerMarket: getFloat64OrDefault("CAPITAL_PER_MARKET", 500.0),
		MaxMarkets:       getIntOrDefault("MAX_MARKETS", 10),

		// Ranking defaults
		MinDaysToResolution: getFloat64OrDefault("MIN_DAYS_TO_RESOLUTION", 14),
		MinDailyReward:      getFloat64OrDefault("MIN_DAILY_REWARD", 1.0),
		MaxCompetitionScore: getFloat64OrDefault("MAX_COMPETITION_SCORE", 70),

		// Quoting defaults
		SpreadSafetyMargin: getFloat64OrDefault("SPREAD_SAFETY_MARGIN", 0.005),

		// Monitoring defaults
		FillAlertThreshold: getFloat64OrDefault("FILL_ALERT_THRESHOLD", 0.02),
		RefreshInterval:    getDurationOrDefault("REFRESH_INTERVAL", 60*time.Second),
		RescanInterval:     getDurationOrDefault("RESCAN_INTERVAL", time.Hour),

		// Scan defaults
		ScanPageLimit: getIntOrDefault("SCAN_PAGE_LIMIT", 100),

		// Notification defaults
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "console"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "lpbot"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "lpbot123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "lp_rewards"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.GammaAPIURL == "" {
		return fmt.Errorf("POLYMARKET_GAMMA_API_URL cannot be empty")
	}

	if c.CLOBAPIURL == "" {
		return fmt.Errorf("POLYMARKET_CLOB_API_URL cannot be empty")
	}

	if c.CapitalPerMarket <= 0 {
		return fmt.Errorf("CAPITAL_PER_MARKET must be positive, got %f", c.CapitalPerMarket)
	}

	if c.MaxMarkets <= 0 {
		return fmt.Errorf("MAX_MARKETS must be positive, got %d", c.MaxMarkets)
	}

	if c.FillAlertThreshold <= 0 || c.FillAlertThreshold >= 0.5 {
		return fmt.Errorf("FILL_ALERT_THRESHOLD must be between 0 and 0.5, got %f", c.FillAlertThreshold)
	}

	if c.SpreadSafetyMargin < 0 || c.SpreadSafetyMargin >= 0.5 {
		return fmt.Errorf("SPREAD_SAFETY_MARGIN must be between 0 and 0.5, got %f", c.SpreadSafetyMargin)
	}

	if c.StorageMode != "postgres" && c.StorageMode != "console" {
		return fmt.Errorf("STORAGE_MODE must be 'postgres' or 'console', got %q", c.StorageMode)
	}

	return nil
}

// RequireTradingCredentials checks that the credentials needed to sign and
// submit orders are present. Commands that never touch orders skip this.
func (c *Config) RequireTradingCredentials() error {
	if c.PrivateKey == "" {
		return fmt.Errorf("PK (private key) is not set")
	}

	if c.APIKey == "" || c.APISecret == "" || c.APIPassphrase == "" {
		return fmt.Errorf("POLYMARKET_API_KEY, POLYMARKET_SECRET and POLYMARKET_PASSPHRASE must all be set")
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
