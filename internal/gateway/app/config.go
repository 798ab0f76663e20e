package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	GraphQLURL    string // Required: upstream WordPress GraphQL endpoint
	PublicBaseURL string // Optional: externally visible base URL (default: http://localhost:8080)

	BasicAuthUsername string // Optional: username gating the public pages
	BasicAuthPassword string // Optional: password (plaintext or argon2id PHC string)

	WhatsAppNumber string // Optional: fallback contact number for the home page

	DatabaseFile         string        // Optional: path to SQLite denylist database (default: ./vitrine.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Denylist sweep interval (default: 1h)
}

// LoadConfig reads configuration from the environment. Nothing is validated
// here: a missing GraphQL URL or Basic-Auth credential fails at first use
// rather than at startup.
func LoadConfig() Config {
	return Config{
		GraphQLURL:           os.Getenv("GRAPHQL_URL"),
		PublicBaseURL:        getEnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		BasicAuthUsername:    os.Getenv("BASIC_AUTH_USERNAME"),
		BasicAuthPassword:    os.Getenv("BASIC_AUTH_PASSWORD"),
		WhatsAppNumber:       os.Getenv("WHATSAPP_NUMBER"),
		DatabaseFile:         getEnvOrDefault("DATABASE_FILE", "vitrine.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// SecureCookies reports whether auth cookies should carry the Secure flag.
// Everything but dev is assumed to sit behind TLS.
func (c Config) SecureCookies() bool {
	return c.Env != "dev"
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

	// Bare integers are taken as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
