package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	StoreDriver  string // Optional: key store driver (sqlite, redis) (default: sqlite)
	DatabaseFile string // Optional: path to SQLite database file (default: ./sigil.db)

	RedisAddr     string // Required when StoreDriver=redis: host:port
	RedisPassword string // Optional: redis password
	RedisDB       int    // Optional: redis database number (default: 0)
	RedisPrefix   string // Optional: redis key prefix (default: sigil)

	SealSecretFile string        // Optional: path to file containing the keyring sealing secret
	APIToken       string        // Optional: if set, required on every engine endpoint
	EntityCacheTTL time.Duration // Optional: parsed keyring cache TTL (default: 5m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		StoreDriver:  getEnvOrDefault("SIGIL_STORE_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("SIGIL_DATABASE_FILE", "sigil.db"),

		RedisAddr:     os.Getenv("SIGIL_REDIS_ADDR"),
		RedisPassword: os.Getenv("SIGIL_REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("SIGIL_REDIS_DB", 0),
		RedisPrefix:   getEnvOrDefault("SIGIL_REDIS_PREFIX", "sigil"),

		SealSecretFile: os.Getenv("SIGIL_SEAL_SECRET_FILE"), // Optional: falls back to SIGIL_SEAL_SECRET env
		APIToken:       os.Getenv("SIGIL_API_TOKEN"),        // Optional: no token means open endpoints
		EntityCacheTTL: getEnvDurationOrDefault("SIGIL_ENTITY_CACHE_TTL", 5*time.Minute),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
