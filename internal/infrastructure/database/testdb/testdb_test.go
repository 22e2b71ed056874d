package testdb

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/shared/config"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"HOST", "PORT", "USERNAME", "PASSWORD", "DATABASE", "DRIVER"} {
		t.Setenv("TEST_DB_"+name, "")
		t.Setenv("DB_"+name, "")
	}
}

func TestConfigFromEnvFallbackChain(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearDBEnv(t)

		cfg := ConfigFromEnv()
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 3306, cfg.Port)
		assert.Equal(t, "root", cfg.Username)
		assert.Equal(t, "", cfg.Password)
		assert.Equal(t, "mero_test", cfg.Database)
		assert.Equal(t, config.DriverMySQL, cfg.Driver)
	})

	t.Run("shared variables", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "3307")

		cfg := ConfigFromEnv()
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 3307, cfg.Port)
	})

	t.Run("test variables win", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("TEST_DB_HOST", "test-db")
		t.Setenv("DB_DATABASE", "mero")
		t.Setenv("TEST_DB_DATABASE", "mero_ci")

		cfg := ConfigFromEnv()
		assert.Equal(t, "test-db", cfg.Host)
		assert.Equal(t, "mero_ci", cfg.Database)
	})

	t.Run("invalid port falls back", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("TEST_DB_PORT", "not-a-port")

		assert.Equal(t, 3306, ConfigFromEnv().Port)
	})

	t.Run("invalid test port falls through to shared port", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("TEST_DB_PORT", "not-a-port")
		t.Setenv("DB_PORT", "3310")

		assert.Equal(t, 3310, ConfigFromEnv().Port)
	})

	t.Run("non-positive port is ignored", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("TEST_DB_PORT", "0")
		t.Setenv("DB_PORT", "-1")

		assert.Equal(t, 3306, ConfigFromEnv().Port)
	})
}

func newSQLiteHelper() *Helper {
	return NewHelper(config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"})
}

func TestHelperLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newSQLiteHelper()

	assert.False(t, h.IsInitialized())
	assert.Nil(t, h.DB())
	assert.ErrorIs(t, h.Truncate(ctx, "tickets"), ErrNotInitialized)

	require.NoError(t, h.Setup(ctx))
	require.True(t, h.IsInitialized())
	require.NoError(t, h.Setup(ctx))

	assert.True(t, h.DB().Migrator().HasTable("organization_settings"))

	require.NoError(t, h.Teardown())
	assert.False(t, h.IsInitialized())
	assert.Nil(t, h.DB())

	assert.NoError(t, h.Teardown())
	assert.False(t, h.IsInitialized())
}

func TestHelperTruncate(t *testing.T) {
	ctx := context.Background()
	h := newSQLiteHelper()
	require.NoError(t, h.Setup(ctx))
	t.Cleanup(func() { _ = h.Teardown() })

	db := h.DB()
	require.NoError(t, db.Exec(
		"INSERT INTO organizations (id, name, slug, status, created_at, updated_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"11111111-1111-1111-1111-111111111111", "Acme", "acme", "active",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO organization_settings (id, organization_id, `key`, value, created_at, updated_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"22222222-2222-2222-2222-222222222222", "11111111-1111-1111-1111-111111111111", "theme", "dark",
	).Error)

	require.NoError(t, h.Truncate(ctx, "organizations", "organization_settings"))

	var orgs, settings int64
	require.NoError(t, db.Table("organizations").Count(&orgs).Error)
	require.NoError(t, db.Table("organization_settings").Count(&settings).Error)
	assert.Zero(t, orgs)
	assert.Zero(t, settings)
}

func TestHelperTruncateMySQLRunsOnOneConnection(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	h := NewHelper(config.DatabaseConfig{Driver: config.DriverMySQL})
	h.db = db

	mock.ExpectExec(regexp.QuoteMeta("SET FOREIGN_KEY_CHECKS = 0")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE `tickets`")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE `ticket_comments`")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("SET FOREIGN_KEY_CHECKS = 1")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, h.Truncate(context.Background(), "tickets", "ticket_comments"))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, sqlDB.Stats().OpenConnections)
}

func TestHelperTruncateReenablesChecksAfterFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	h := NewHelper(config.DatabaseConfig{Driver: config.DriverMySQL})
	h.db = db

	mock.ExpectExec(regexp.QuoteMeta("SET FOREIGN_KEY_CHECKS = 0")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE `tickets`")).WillReturnError(assert.AnError)
	mock.ExpectExec(regexp.QuoteMeta("SET FOREIGN_KEY_CHECKS = 1")).WillReturnResult(sqlmock.NewResult(0, 0))

	err = h.Truncate(context.Background(), "tickets")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
