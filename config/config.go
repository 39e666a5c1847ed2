package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"tradePulseBot/internal/adapters/logger" // Import the logger package for LogLevel
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/signal"
)

// Config holds all application configuration.
type Config struct {
	// Binance API. Only public market data endpoints are used, so the keys
	// may be left empty.
	APIKey    string
	SecretKey string
	IsTestnet bool

	// Analysis Parameters
	Symbol       string            // Symbol analyzed by default
	DefaultStyle domain.TradingStyle // Trading style when none is requested

	// Gating thresholds
	Gates signal.Gates

	// Trade Monitoring
	MonitorPollInterval time.Duration // Quote polling cadence for active trades
	TimeStop            time.Duration // Maximum hold time before the time-stop alert

	// Session filter
	SessionTimezone *time.Location // Exchange session timezone for the scalping filter

	// Logging
	LogLevel  logger.LogLevel // Use the LogLevel type from the logger adapter
	LogFormat string          // "text" (stdlib) or "json" (zerolog)
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Binance API
	cfg.APIKey = getEnv("BINANCE_API_KEY", "")
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", true) // Default to testnet for safety

	// Analysis Parameters
	cfg.Symbol = getEnv("SYMBOL", "BTCUSDT")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}

	styleStr := getEnv("TRADING_STYLE", string(domain.StyleDayTrading))
	cfg.DefaultStyle, err = domain.ParseStyle(styleStr)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TRADING_STYLE: %v", err))
	}

	// Gating thresholds
	cfg.Gates = signal.DefaultGates
	cfg.Gates.BlockBelow, err = getEnvAsIntRequired("CONFIDENCE_BLOCK_BELOW", signal.DefaultGates.BlockBelow)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CONFIDENCE_BLOCK_BELOW: %v", err))
	}
	cfg.Gates.FullAt, err = getEnvAsIntRequired("CONFIDENCE_FULL_AT", signal.DefaultGates.FullAt)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CONFIDENCE_FULL_AT: %v", err))
	}
	if cfg.Gates.BlockBelow < 0 || cfg.Gates.FullAt > 100 || cfg.Gates.BlockBelow > cfg.Gates.FullAt {
		errs = append(errs, "confidence gates must satisfy 0 <= CONFIDENCE_BLOCK_BELOW <= CONFIDENCE_FULL_AT <= 100")
	}

	// Trade Monitoring
	pollSeconds, err := getEnvAsIntRequired("MONITOR_POLL_INTERVAL_SECONDS", 15)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid MONITOR_POLL_INTERVAL_SECONDS: %v", err))
	} else if pollSeconds <= 0 {
		errs = append(errs, "MONITOR_POLL_INTERVAL_SECONDS must be positive")
	}
	cfg.MonitorPollInterval = time.Duration(pollSeconds) * time.Second

	timeStopMinutes, err := getEnvAsIntRequired("TIME_STOP_MINUTES", 30)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TIME_STOP_MINUTES: %v", err))
	} else if timeStopMinutes <= 0 {
		errs = append(errs, "TIME_STOP_MINUTES must be positive")
	}
	cfg.TimeStop = time.Duration(timeStopMinutes) * time.Minute

	// Session filter
	tzName := getEnv("SESSION_TIMEZONE", "America/New_York")
	cfg.SessionTimezone, err = time.LoadLocation(tzName)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid SESSION_TIMEZONE '%s': %v", tzName, err))
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", "text"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'text' or 'json'", cfg.LogFormat))
	}

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
