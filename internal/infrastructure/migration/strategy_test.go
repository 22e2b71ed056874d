package migration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/persistence/migrations"
	"github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/logger"
)

const (
	versionSystemSettings = 20250101000200
	versionWarehouses     = 20250101000500
	versionWarehouseType  = 20250101000600
	versionCRMPrice       = 20250101000800
	versionAppAccess      = 20250101000900
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newStrategy(t *testing.T, opts ...Option) *GooseStrategy {
	t.Helper()
	opts = append([]Option{WithLogger(logger.Nop())}, opts...)
	s, err := NewGooseStrategy(config.DriverSQLite, opts...)
	require.NoError(t, err)
	return s
}

func TestMigrateAppliesEverything(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	require.NoError(t, s.Migrate(ctx, db))

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, migrations.Latest(), version)

	for _, table := range []string{
		"organizations", "users", "roles", "organization_members", "sessions",
		"organization_settings", "system_settings", "tickets", "ticket_comments",
		"warehouses", "apps", "organization_app_access", "payments", "file_uploads",
		"user_action_tokens",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn("roles", "hierarchy_level"))
	assert.True(t, db.Migrator().HasColumn("users", "is_system_admin"))

	// Running again is a no-op.
	require.NoError(t, s.Migrate(ctx, db))
}

func TestMigrateDownAllRestoresEmptySchema(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	require.NoError(t, s.Migrate(ctx, db))
	require.NoError(t, s.MigrateDown(ctx, db, 100))

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	for _, table := range []string{"organizations", "users", "sessions", "apps", "ticket_comments", "user_action_tokens"} {
		assert.False(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrateDownRejectsNonPositiveSteps(t *testing.T) {
	db := openSQLite(t)
	assert.Error(t, newStrategy(t).MigrateDown(context.Background(), db, 0))
}

func TestWarehouseTypeDefaultsExistingRows(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	require.NoError(t, s.MigrateTo(ctx, db, versionWarehouses))
	assert.False(t, db.Migrator().HasColumn("warehouses", "type"))

	now := time.Now().UTC()
	require.NoError(t, db.Exec(
		"INSERT INTO organizations (id, name, slug, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"org-1", "Acme", "acme", "active", now, now).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO warehouses (id, organization_id, name, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"wh-1", "org-1", "Central", true, now, now).Error)

	require.NoError(t, s.MigrateTo(ctx, db, versionWarehouseType))

	var typ string
	require.NoError(t, db.Raw("SELECT type FROM warehouses WHERE id = ?", "wh-1").Scan(&typ).Error)
	assert.Equal(t, "main", typ)

	require.NoError(t, s.MigrateDown(ctx, db, 1))
	assert.False(t, db.Migrator().HasColumn("warehouses", "type"))
	assert.True(t, db.Migrator().HasTable("warehouses"))
}

func TestMeroCRMPriceIsReversible(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	price := func() decimal.Decimal {
		var raw string
		require.NoError(t, db.Raw("SELECT price FROM apps WHERE slug = ?", "mero-crm").Row().Scan(&raw))
		p, err := decimal.NewFromString(raw)
		require.NoError(t, err)
		return p
	}

	require.NoError(t, s.MigrateTo(ctx, db, versionCRMPrice))
	assert.True(t, price().Equal(decimal.RequireFromString("30.00")), price().String())

	require.NoError(t, s.MigrateDown(ctx, db, 1))
	assert.True(t, price().Equal(decimal.RequireFromString("25.00")), price().String())
}

func TestSessionOrganizationNullableRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	require.NoError(t, s.Migrate(ctx, db))

	now := time.Now().UTC()
	require.NoError(t, db.Exec(
		"INSERT INTO users (id, email, status, email_verified, mfa_enabled, is_system_admin, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		"user-1", "root@example.com", "active", true, false, true, now, now).Error)
	insertAdminSession := func(id string) error {
		return db.Exec(
			"INSERT INTO sessions (id, user_id, organization_id, refresh_token_hash, expires_at, created_at, updated_at) VALUES (?, ?, NULL, ?, ?, ?, ?)",
			id, "user-1", "hash", now.Add(time.Hour), now, now).Error
	}

	require.NoError(t, insertAdminSession("sess-1"))

	require.NoError(t, s.MigrateDown(ctx, db, 1))

	var count int64
	require.NoError(t, db.Table("sessions").Count(&count).Error)
	assert.Zero(t, count, "sessions without an organization are removed on rollback")
	assert.Error(t, insertAdminSession("sess-2"), "organization_id is required again")
}

func TestMigrateStopsAtFailingStep(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	all := migrations.All(config.DriverSQLite)
	failing := migrations.Build(config.DriverSQLite, all[2].Version+1,
		func(*gorm.DB) error { return errors.New("boom") },
		func(*gorm.DB) error { return nil },
	)
	s := newStrategy(t, WithMigrations(append(append([]*goose.Migration{}, all[:3]...), failing, all[3])...))

	err := s.Migrate(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(versionSystemSettings), version)
	assert.False(t, db.Migrator().HasTable("tickets"))
}

func TestStatusReportsAppliedAndPending(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t)

	require.NoError(t, s.MigrateTo(ctx, db, versionAppAccess))

	rows, err := s.Status(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, len(migrations.Names()))

	last := rows[len(rows)-1]
	assert.Equal(t, migrations.Latest(), last.Version)
	assert.Equal(t, "create_user_action_tokens", last.Name)
	assert.False(t, last.Applied)
	assert.True(t, rows[0].Applied)
}

type recordingLocker struct {
	obtained int
	released int
	err      error
}

func (l *recordingLocker) Obtain(context.Context, string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.obtained++
	return func() { l.released++ }, nil
}

func TestMigrateHoldsLock(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	locker := &recordingLocker{}
	s := newStrategy(t, WithLocker(locker))

	require.NoError(t, s.Migrate(ctx, db))
	require.NoError(t, s.MigrateDown(ctx, db, 1))

	assert.Equal(t, 2, locker.obtained)
	assert.Equal(t, 2, locker.released)
}

func TestMigrateSkippedWhenLockUnavailable(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	s := newStrategy(t, WithLocker(&recordingLocker{err: errors.New("held elsewhere")}))

	err := s.Migrate(ctx, db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration lock")
	assert.False(t, db.Migrator().HasTable("organizations"))
}

func TestMigrateReportsDatabaseFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	mock.MatchExpectationsInOrder(false)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	locker := &recordingLocker{}
	s, err := NewGooseStrategy(config.DriverMySQL, WithLogger(logger.Nop()), WithLocker(locker))
	require.NoError(t, err)

	assert.Error(t, s.Migrate(context.Background(), db))
	assert.Equal(t, 1, locker.released)
}

func TestNewGooseStrategyRejectsUnknownDriver(t *testing.T) {
	_, err := NewGooseStrategy("oracle")
	assert.Error(t, err)
}
