package services

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services. Both are nil
// when the result archive is disabled.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

// InitServices connects to Postgres and Redis if the config enables storage.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	if !cfg.StorageEnabled() {
		return &Services{}, nil
	}

	// Initialize database
	postgres, err := InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, errors.Join(err, postgres.Close())
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
	}, nil
}

// Enabled checks if both connections are available.
func (s *Services) Enabled() bool {
	return s != nil && s.Postgres != nil && s.Redis != nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing Postgres: %w", err))
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}
