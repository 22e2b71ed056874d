// Package testdb bootstraps a migrated database for integration tests.
//
// Connection settings come from the environment. Each value is looked up
// first under its TEST_DB_* name, then under the shared DB_* name, then
// falls back to a local default. A .env.test file is loaded when present;
// variables already set in the environment win over it.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/migration"
	"github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/logger"
)

const EnvFile = ".env.test"

const (
	defaultHost     = "localhost"
	defaultPort     = 3306
	defaultUsername = "root"
	defaultPassword = ""
	defaultDatabase = "mero_test"
	defaultDriver   = config.DriverMySQL
)

var ErrNotInitialized = errors.New("test database is not initialized")

// ConfigFromEnv resolves the test database configuration.
func ConfigFromEnv() config.DatabaseConfig {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.NewLogger().Warnw("failed to load test env file", "file", EnvFile, "error", err)
	}

	port := defaultPort
	for _, name := range []string{"TEST_DB_PORT", "DB_PORT"} {
		if n, err := strconv.Atoi(os.Getenv(name)); err == nil && n > 0 {
			port = n
			break
		}
	}

	return config.DatabaseConfig{
		Driver:       lookup("DRIVER", defaultDriver),
		Host:         lookup("HOST", defaultHost),
		Port:         port,
		Username:     lookup("USERNAME", defaultUsername),
		Password:     lookup("PASSWORD", defaultPassword),
		Database:     lookup("DATABASE", defaultDatabase),
		MaxIdleConns: 2,
		MaxOpenConns: 5,
	}
}

func lookup(name, fallback string) string {
	if v, ok := os.LookupEnv("TEST_DB_" + name); ok && v != "" {
		return v
	}
	if v, ok := os.LookupEnv("DB_" + name); ok && v != "" {
		return v
	}
	return fallback
}

// Helper owns one connection for the duration of a test run.
type Helper struct {
	cfg    config.DatabaseConfig
	logger logger.Interface

	mu sync.Mutex
	db *gorm.DB
}

func NewHelper(cfg config.DatabaseConfig) *Helper {
	return &Helper{cfg: cfg, logger: logger.Nop()}
}

// FromEnv is NewHelper(ConfigFromEnv()).
func FromEnv() *Helper {
	return NewHelper(ConfigFromEnv())
}

// Setup connects and applies every migration. Calling it on an initialized
// helper is a no-op.
func (h *Helper) Setup(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return nil
	}

	conn, err := database.Open(&h.cfg)
	if err != nil {
		return err
	}

	strategy, err := migration.NewGooseStrategy(h.cfg.Driver, migration.WithLogger(h.logger))
	if err == nil {
		err = strategy.Migrate(ctx, conn)
	}
	if err != nil {
		closeDB(conn)
		return fmt.Errorf("failed to migrate test database: %w", err)
	}

	h.db = conn
	return nil
}

// DB returns the live connection, or nil before Setup and after Teardown.
func (h *Helper) DB() *gorm.DB {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db
}

func (h *Helper) IsInitialized() bool {
	return h.DB() != nil
}

// Truncate empties the given tables with foreign key checks suspended.
func (h *Helper) Truncate(ctx context.Context, tables ...string) error {
	conn := h.DB()
	if conn == nil {
		return ErrNotInitialized
	}
	if len(tables) == 0 {
		return nil
	}

	off, on, stmt := "SET FOREIGN_KEY_CHECKS = 0", "SET FOREIGN_KEY_CHECKS = 1", "TRUNCATE TABLE "
	if h.cfg.Driver == config.DriverSQLite {
		off, on, stmt = "PRAGMA foreign_keys = OFF", "PRAGMA foreign_keys = ON", "DELETE FROM "
	}

	// The foreign key switch is per connection, so every statement runs on one.
	return conn.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Exec(off).Error; err != nil {
			return fmt.Errorf("failed to disable foreign keys: %w", err)
		}
		defer func() {
			if err := tx.Exec(on).Error; err != nil {
				h.logger.Warnw("failed to re-enable foreign keys", "error", err)
			}
		}()

		for _, table := range tables {
			if err := tx.Exec(stmt + tx.Statement.Quote(table)).Error; err != nil {
				return fmt.Errorf("failed to truncate %s: %w", table, err)
			}
		}
		return nil
	})
}

// Teardown releases the connection. It always leaves the helper
// uninitialized and is safe to call repeatedly.
func (h *Helper) Teardown() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	conn := h.db
	h.db = nil

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func closeDB(conn *gorm.DB) {
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
