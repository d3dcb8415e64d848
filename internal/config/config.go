package config

import (
	"os"
	"strconv"
	"time"
)

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	Debug bool
}

// UploadConfig holds the simulated upload settings.
type UploadConfig struct {
	DelayMs int
}

// Delay returns the upload delay as a duration.
func (c UploadConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// DashboardConfig holds the dashboard view settings.
type DashboardConfig struct {
	TickerIntervalMs int
	SeedSamples      bool
	WalletAddress    string
}

// TickerInterval returns the status ticker period as a duration.
func (c DashboardConfig) TickerInterval() time.Duration {
	return time.Duration(c.TickerIntervalMs) * time.Millisecond
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost            string
	Port               string
	ServiceName        string
	ShutdownTimeoutSec int
	Log                LogConfig
	Upload             UploadConfig
	Dashboard          DashboardConfig
}

// ShutdownTimeout returns the graceful shutdown budget.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:            getEnv("APP_HOST", "localhost:8080"),
		Port:               getEnv("PORT", "8080"),
		ServiceName:        getEnv("SERVICE_NAME", "docdash"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Debug: getEnvBool("LOG_DEBUG", false),
		},
		Upload: UploadConfig{
			DelayMs: getEnvPositiveInt("UPLOAD_DELAY_MS", 2000),
		},
		Dashboard: DashboardConfig{
			TickerIntervalMs: getEnvPositiveInt("TICKER_INTERVAL_MS", 3000),
			SeedSamples:      getEnvBool("SEED_SAMPLES", true),
			WalletAddress:    getEnv("WALLET_ADDRESS", "0x742d35Cc4Bf4a1CafC7Ae4E7F3B4c8d9e0F1a2B3"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvPositiveInt is getEnvInt for durations and sizes, where zero or
// negative values fall back to the default.
func getEnvPositiveInt(key string, def int) int {
	if i := getEnvInt(key, def); i > 0 {
		return i
	}
	return def
}
