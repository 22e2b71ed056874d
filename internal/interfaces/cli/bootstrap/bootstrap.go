// Package bootstrap holds the start-up steps shared by the CLI commands.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/merojugx/mero/internal/infrastructure/config"
	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/lock"
	"github.com/merojugx/mero/internal/infrastructure/migration"
	"github.com/merojugx/mero/internal/shared/logger"
)

const (
	migrationLockTTL  = 10 * time.Minute
	migrationLockWait = 30 * time.Second
)

// LoadConfig reads configuration, maps env to a gin mode and initializes the
// process logger.
func LoadConfig(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// OpenDatabase loads configuration and opens the global database handle.
// Callers close it with database.Close.
func OpenDatabase(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, log, err := LoadConfig(env, configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

// MigrationStrategy builds the goose runner. With a Redis client the run is
// serialized across processes.
func MigrationStrategy(cfg *config.Config, client *redis.Client, log logger.Interface) (*migration.GooseStrategy, error) {
	opts := []migration.Option{migration.WithLogger(log.Named("migration"))}
	if client != nil {
		opts = append(opts, migration.WithLocker(lock.NewRedisLocker(client, migrationLockTTL, migrationLockWait, log)))
	}
	return migration.NewGooseStrategy(cfg.Database.Driver, opts...)
}

// NewRedis returns a client when Redis is enabled, nil otherwise.
func NewRedis(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// GinMode maps a deployment environment to a gin mode.
func GinMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
