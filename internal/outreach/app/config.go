package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/mutuals/pkg/jwtx"
)

type Config struct {
	Issuer string // Optional: issuer claim on session tokens (default: mutuals)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./mutuals.db)
	DatabaseURL    string // Required for postgres: connection string

	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SessionKeyFile string        // Optional: path to the Ed25519 key that signs session tokens (default: ./session.key)
	SessionTTL     time.Duration // Optional: session lifetime (default: 7 days)
	CookieSecure   bool          // Optional: mark the session cookie Secure (default: false)

	LinkedInFixturesFile string // Optional: YAML fixtures for the LinkedIn directory (default: embedded set)
	OpenAIAPIKey         string // Optional: enables the generation tools when set
	OpenAIModel          string // Optional: chat model for the generation tools

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("OUTREACH_ISSUER", "mutuals"),
		DatabaseDriver:       getEnvOrDefault("OUTREACH_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:         getEnvOrDefault("OUTREACH_DATABASE_FILE", "mutuals.db"),
		DatabaseURL:          os.Getenv("OUTREACH_DATABASE_URL"),
		PepperFile:           getEnvOrDefault("OUTREACH_PEPPER_FILE", "pepper"),
		SessionKeyFile:       getEnvOrDefault("OUTREACH_SESSION_KEY_FILE", "session.key"),
		SessionTTL:           getEnvDurationOrDefault("OUTREACH_SESSION_TTL", jwtx.DefaultSessionTTL),
		CookieSecure:         getEnvBoolOrDefault("OUTREACH_COOKIE_SECURE", false),
		LinkedInFixturesFile: os.Getenv("LINKEDIN_FIXTURES_FILE"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          os.Getenv("OPENAI_MODEL"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
