package app

import (
	"os"
	"strconv"
	"time"

	"github.com/vyaapaarai/console/internal/console/service"
)

type Config struct {
	Issuer      string // Issuer claim for session tokens
	TokenSecret string // HS256 signing secret; generated at startup if empty

	OTPMode    string // OTP verification mode (static, totp) (default: static)
	OTPCode    string // Override for the static demo code (default: 123456)
	TOTPSecret string // Shared secret, required when OTPMode is totp

	CatalogDSN       string        // SQLite DSN for the demo catalog (default: :memory:)
	InactivityWindow time.Duration // Verified-session inactivity timeout (default: 30m)
	SessionTTL       time.Duration // Bearer token lifetime (default: 12h)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:      getEnvOrDefault("CONSOLE_ISSUER", "vyaapaarai-console"),
		TokenSecret: os.Getenv("CONSOLE_TOKEN_SECRET"),

		OTPMode:    getEnvOrDefault("CONSOLE_OTP_MODE", "static"),
		OTPCode:    getEnvOrDefault("CONSOLE_OTP_CODE", service.DemoOTPCode),
		TOTPSecret: os.Getenv("CONSOLE_TOTP_SECRET"),

		CatalogDSN:       getEnvOrDefault("CONSOLE_CATALOG_DSN", ":memory:"),
		InactivityWindow: getEnvDurationOrDefault("CONSOLE_INACTIVITY_WINDOW", service.DefaultInactivityWindow),
		SessionTTL:       getEnvDurationOrDefault("CONSOLE_SESSION_TTL", service.DefaultSessionTTL),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
