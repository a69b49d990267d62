package config

import (
	"log/slog"
	"os"
)

const (
	defaultStaticDir = "static"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	StaticDir         string
	PostgresURL       string
	RedisURL          string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		StaticDir:         getEnv("REVERSI_STATIC_DIR", defaultStaticDir),
		PostgresURL:       os.Getenv("REVERSI_POSTGRES_URL"),
		RedisURL:          os.Getenv("REVERSI_REDIS_URL"),
		BasicAuthUsername: os.Getenv("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: os.Getenv("REVERSI_BASIC_AUTH_PASS"),
		Token:             os.Getenv("REVERSI_TOKEN"),
	}
}

// StorageEnabled checks if finished matches are archived.
func (c *ServerConfig) StorageEnabled() bool {
	return c.PostgresURL != "" && c.RedisURL != ""
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
