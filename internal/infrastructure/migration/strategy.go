// Package migration runs the versioned schema migrations through goose.
package migration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/infrastructure/persistence/migrations"
	"github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/logger"
)

// LockKey is the distributed lock held while the schema is being changed.
const LockKey = "mero:migrations"

// Locker serializes migration runs across processes.
type Locker interface {
	Obtain(ctx context.Context, key string) (release func(), err error)
}

// MigrationStatus is one row of `migrate status`.
type MigrationStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

type GooseStrategy struct {
	dialect    goose.Dialect
	migrations []*goose.Migration
	names      map[int64]string
	locker     Locker
	logger     logger.Interface
}

type Option func(*GooseStrategy)

// WithMigrations replaces the built in migration set, mainly for tests.
func WithMigrations(ms ...*goose.Migration) Option {
	return func(s *GooseStrategy) {
		s.migrations = ms
	}
}

func WithLocker(l Locker) Option {
	return func(s *GooseStrategy) {
		s.locker = l
	}
}

func WithLogger(l logger.Interface) Option {
	return func(s *GooseStrategy) {
		s.logger = l
	}
}

func NewGooseStrategy(driver string, opts ...Option) (*GooseStrategy, error) {
	var dialect goose.Dialect
	switch driver {
	case config.DriverMySQL, "":
		dialect = goose.DialectMySQL
	case config.DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	s := &GooseStrategy{
		dialect:    dialect,
		migrations: migrations.All(driver),
		names:      migrations.Names(),
		logger:     logger.NewLogger().With("component", "migration.goose"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// provider does not own the connection: its Close would close db, so callers
// never close it.
func (s *GooseStrategy) provider(db *gorm.DB) (*goose.Provider, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	p, err := goose.NewProvider(s.dialect, sqlDB, nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithGoMigrations(s.migrations...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}
	return p, nil
}

func (s *GooseStrategy) withLock(ctx context.Context, fn func() error) error {
	if s.locker == nil {
		return fn()
	}
	release, err := s.locker.Obtain(ctx, LockKey)
	if err != nil {
		return fmt.Errorf("failed to obtain migration lock: %w", err)
	}
	defer release()
	return fn()
}

// Migrate applies every pending migration. On failure the schema stays at
// the last migration that succeeded and the error names the failing version.
func (s *GooseStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	return s.MigrateTo(ctx, db, 0)
}

// MigrateTo applies pending migrations up to and including version; 0 means all.
func (s *GooseStrategy) MigrateTo(ctx context.Context, db *gorm.DB, version int64) error {
	return s.withLock(ctx, func() error {
		p, err := s.provider(db)
		if err != nil {
			return err
		}

		from, err := p.GetDBVersion(ctx)
		if err != nil {
			s.logger.Errorw("failed to get current version", "error", err)
			return fmt.Errorf("failed to get current version: %w", err)
		}

		s.logger.Infow("starting goose migration", "version", from, "target", version)

		var results []*goose.MigrationResult
		if version > 0 {
			results, err = p.UpTo(ctx, version)
		} else {
			results, err = p.Up(ctx)
		}
		if err != nil {
			to, _ := p.GetDBVersion(ctx)
			var partial *goose.PartialError
			if errors.As(err, &partial) && partial.Failed != nil && partial.Failed.Source != nil {
				s.logger.Errorw("migration failed",
					"failed_version", partial.Failed.Source.Version,
					"applied_version", to,
					"error", err)
				return fmt.Errorf("migration %d failed (schema left at version %d): %w",
					partial.Failed.Source.Version, to, err)
			}
			s.logger.Errorw("migration failed", "applied_version", to, "error", err)
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		to, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to get final version: %w", err)
		}

		s.logger.Infow("migration completed successfully",
			"from_version", from,
			"to_version", to,
			"applied", len(results))
		return nil
	})
}

// MigrateDown rolls back up to steps migrations, stopping early when none remain.
func (s *GooseStrategy) MigrateDown(ctx context.Context, db *gorm.DB, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return s.withLock(ctx, func() error {
		p, err := s.provider(db)
		if err != nil {
			return err
		}

		s.logger.Infow("starting down migration", "steps", steps)

		for i := 0; i < steps; i++ {
			res, err := p.Down(ctx)
			if errors.Is(err, goose.ErrNoNextVersion) {
				s.logger.Infow("no more migrations to roll back", "rolled_back", i)
				break
			}
			if err != nil {
				s.logger.Errorw("down migration failed", "error", err)
				return fmt.Errorf("failed to run down migration: %w", err)
			}
			s.logger.Infow("rolled back migration", "version", res.Source.Version)
		}

		s.logger.Infow("down migration completed successfully")
		return nil
	})
}

func (s *GooseStrategy) GetVersion(ctx context.Context, db *gorm.DB) (int64, error) {
	p, err := s.provider(db)
	if err != nil {
		return 0, err
	}
	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(ctx context.Context, db *gorm.DB) ([]MigrationStatus, error) {
	p, err := s.provider(db)
	if err != nil {
		return nil, err
	}
	rows, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(rows))
	for _, r := range rows {
		out = append(out, MigrationStatus{
			Version:   r.Source.Version,
			Name:      s.names[r.Source.Version],
			Applied:   r.State == goose.StateApplied,
			AppliedAt: r.AppliedAt,
		})
	}
	return out, nil
}
