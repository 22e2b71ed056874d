package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/ticket"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/infrastructure/database/testdb"
	"github.com/merojugx/mero/internal/shared/config"
	"github.com/merojugx/mero/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	h := testdb.NewHelper(config.DatabaseConfig{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, h.Setup(context.Background()))
	t.Cleanup(func() { _ = h.Teardown() })

	return h.DB()
}

func createTestOrganization(t *testing.T, gdb *gorm.DB, name string) *organization.Organization {
	t.Helper()
	org, err := organization.NewOrganization(name, "")
	require.NoError(t, err)
	require.NoError(t, NewOrganizationRepository(gdb, logger.Nop()).Create(context.Background(), org))
	return org
}

func createTestUser(t *testing.T, gdb *gorm.DB, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "hash", "Test", "User")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(gdb, logger.Nop()).Create(context.Background(), u))
	return u
}

func createTestRole(t *testing.T, gdb *gorm.DB, orgID, name string) *role.Role {
	t.Helper()
	r, err := role.NewCustomRole(orgID, name, "", "")
	require.NoError(t, err)
	require.NoError(t, NewRoleRepository(gdb).Create(context.Background(), r))
	return r
}

func createTestTicket(t *testing.T, gdb *gorm.DB, orgID, userID, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(orgID, userID, title, "", ticket.PriorityHigh)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(gdb, logger.Nop()).Create(context.Background(), tk))
	return tk
}
