// Package migrations holds the ordered, reversible schema changes. Each step
// is a goose Go migration that runs gorm's Migrator inside the migration
// transaction, so the same code serves MySQL and SQLite.
//
// Table structs in this package are frozen snapshots of the schema at the
// time of the step; they must not be replaced by the live persistence models.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/merojugx/mero/internal/shared/config"
)

type stepFunc func(tx *gorm.DB) error

type step struct {
	version int64
	name    string
	up      stepFunc
	down    stepFunc
}

var steps = []step{
	{20250101000000, "create_core_tables", upCoreTables, downCoreTables},
	{20250101000100, "create_organization_settings", upOrganizationSettings, downOrganizationSettings},
	{20250101000200, "create_system_settings", upSystemSettings, downSystemSettings},
	{20250101000300, "create_tickets_and_comments", upTicketsAndComments, downTicketsAndComments},
	{20250101000400, "add_role_hierarchy_level", upRoleHierarchyLevel, downRoleHierarchyLevel},
	{20250101000500, "create_warehouses", upWarehouses, downWarehouses},
	{20250101000600, "add_warehouse_type", upWarehouseType, downWarehouseType},
	{20250101000700, "create_apps", upApps, downApps},
	{20250101000800, "update_mero_crm_price", upMeroCRMPrice, downMeroCRMPrice},
	{20250101000900, "create_app_access_and_payments", upAppAccessAndPayments, downAppAccessAndPayments},
	{20250101001000, "make_session_organization_nullable", upSessionOrganizationNullable, downSessionOrganizationNullable},
	{20250101001100, "create_user_action_tokens", upUserActionTokens, downUserActionTokens},
}

// All returns every migration bound to the given database driver.
func All(driver string) []*goose.Migration {
	out := make([]*goose.Migration, 0, len(steps))
	for _, s := range steps {
		out = append(out, Build(driver, s.version, s.up, s.down))
	}
	return out
}

// Names maps versions to their human readable names.
func Names() map[int64]string {
	out := make(map[int64]string, len(steps))
	for _, s := range steps {
		out[s.version] = s.name
	}
	return out
}

// Latest is the version of the newest migration.
func Latest() int64 {
	return steps[len(steps)-1].version
}

// Build wraps a pair of gorm functions as a transactional goose migration.
func Build(driver string, version int64, up, down func(tx *gorm.DB) error) *goose.Migration {
	return goose.NewGoMigration(version,
		&goose.GoFunc{RunTx: wrap(driver, up)},
		&goose.GoFunc{RunTx: wrap(driver, down)},
	)
}

func wrap(driver string, fn stepFunc) func(ctx context.Context, tx *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		gdb, err := open(driver, tx)
		if err != nil {
			return err
		}
		return fn(gdb.WithContext(ctx))
	}
}

func open(driver string, tx *sql.Tx) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite:
		dialector = &sqlite.Dialector{Conn: tx}
	case config.DriverMySQL, "":
		dialector = mysql.New(mysql.Config{Conn: tx, SkipInitializeWithVersion: true})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open migration session: %w", err)
	}
	return gdb, nil
}

// addColumnIfMissing keeps forward steps safe to re-run on databases that
// were patched by hand.
func addColumnIfMissing(tx *gorm.DB, model any, field string) error {
	m := tx.Migrator()
	if m.HasColumn(model, field) {
		return nil
	}
	return m.AddColumn(model, field)
}

func dropColumnIfExists(tx *gorm.DB, model any, field string) error {
	m := tx.Migrator()
	if !m.HasColumn(model, field) {
		return nil
	}
	return m.DropColumn(model, field)
}

func dropTables(tx *gorm.DB, tables ...string) error {
	for _, t := range tables {
		if err := tx.Migrator().DropTable(t); err != nil {
			return fmt.Errorf("failed to drop %s: %w", t, err)
		}
	}
	return nil
}
