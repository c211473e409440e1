package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port      string
	Env       string
	BaseURL   string
	JWTSecret string

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig contains MongoDB connection parameters. A missing URI is a
// misconfiguration the process survives: connection attempts simply keep
// failing and retrying, so validation warns rather than aborts.
type MongoConfig struct {
	URI               string
	Database          string
	SelectionTimeout  time.Duration
	SocketTimeout     time.Duration
	RetryDelay        time.Duration
	HeartbeatInterval time.Duration
}

// RedisConfig contains Redis connection parameters. An empty Host disables
// the cache layer entirely.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "3000")
	cfg.Env = getEnv("ENV", "development")
	cfg.BaseURL = getEnv("URL_DEPLOYMENT", "")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	cfg.JWTSecret = getEnv("JWT_SECRET", "")

	// MongoDB
	cfg.Mongo = MongoConfig{
		URI:      getEnv("SERVER_URI_MONGODB", ""),
		Database: getEnv("MONGODB_DATABASE", "bookstore"),
	}

	var err error
	if cfg.Mongo.SelectionTimeout, err = parseDurationEnv("MONGODB_SELECTION_TIMEOUT", "5s"); err != nil {
		return nil, fmt.Errorf("invalid MONGODB_SELECTION_TIMEOUT: %w", err)
	}
	if cfg.Mongo.SocketTimeout, err = parseDurationEnv("MONGODB_SOCKET_TIMEOUT", "45s"); err != nil {
		return nil, fmt.Errorf("invalid MONGODB_SOCKET_TIMEOUT: %w", err)
	}
	if cfg.Mongo.RetryDelay, err = parseDurationEnv("MONGODB_RETRY_DELAY", "5s"); err != nil {
		return nil, fmt.Errorf("invalid MONGODB_RETRY_DELAY: %w", err)
	}
	if cfg.Mongo.HeartbeatInterval, err = parseDurationEnv("MONGODB_HEARTBEAT_INTERVAL", "10s"); err != nil {
		return nil, fmt.Errorf("invalid MONGODB_HEARTBEAT_INTERVAL: %w", err)
	}

	// Redis (optional cache)
	cfg.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the value of an environment variable as an integer or a default if empty/invalid.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be >= 0")
	}
	return d, nil
}
