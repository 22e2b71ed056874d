package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/domain/app"
	"github.com/merojugx/mero/internal/domain/organization"
	"github.com/merojugx/mero/internal/domain/payment"
	"github.com/merojugx/mero/internal/domain/role"
	"github.com/merojugx/mero/internal/domain/upload"
	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/domain/warehouse"
	"github.com/merojugx/mero/internal/shared/authorization"
	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/logger"
)

func TestOrganizationRepository_SlugTaken(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewOrganizationRepository(gdb, logger.Nop())

	createTestOrganization(t, gdb, "Acme")
	other := createTestOrganization(t, gdb, "Globex")

	_, err := other.ChangeSlug("acme")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, other), organization.ErrSlugTaken)

	_, err = other.ChangeSlug("globex-np")
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, other))

	got, err := repo.GetBySlug(ctx, "globex-np")
	require.NoError(t, err)
	assert.Equal(t, other.ID(), got.ID())
}

func TestUserRepository_UpdateClearsMFA(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(gdb, logger.Nop())

	u := createTestUser(t, gdb, "mfa@example.com")
	u.EnableMFA("SECRET", []string{"h1"})
	require.NoError(t, u.GrantSystemAdmin(authorization.SystemAdminRoleAdmin))
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByEmail(ctx, "MFA@example.com")
	require.NoError(t, err)
	assert.True(t, got.MFAEnabled())
	assert.Equal(t, []string{"h1"}, got.MFABackupCodes())

	require.NoError(t, got.DisableMFA())
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.False(t, got.MFAEnabled())
	assert.Nil(t, got.MFASecret())
	assert.Empty(t, got.MFABackupCodes())
	assert.Nil(t, got.MFASetupCompletedAt())

	admins, err := repo.CountSystemAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	assert.ErrorIs(t, repo.Create(ctx, u), user.ErrEmailTaken)
}

func TestSessionRepository_NullOrganization(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(gdb)
	u := createTestUser(t, gdb, "admin@example.com")

	adminSession := user.NewSession(u.ID(), nil, "127.0.0.1", "test", time.Hour)
	adminSession.SetRefreshTokenHash("hash")
	require.NoError(t, repo.Create(ctx, adminSession))

	expired := user.NewSession(u.ID(), nil, "", "", -time.Hour)
	expired.SetRefreshTokenHash("hash")
	require.NoError(t, repo.Create(ctx, expired))

	got, err := repo.GetByID(ctx, adminSession.ID())
	require.NoError(t, err)
	assert.True(t, got.IsSystemAdminSession())

	active, err := repo.CountActive(ctx, biztime.NowUTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	deleted, err := repo.DeleteExpired(ctx, biztime.NowUTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got.Revoke()
	require.NoError(t, repo.Update(ctx, got))
	active, err = repo.CountActive(ctx, biztime.NowUTC())
	require.NoError(t, err)
	assert.Zero(t, active)
}

func TestRoleRepository_HierarchyLevelRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewRoleRepository(gdb)
	org := createTestOrganization(t, gdb, "Acme")
	r := createTestRole(t, gdb, org.ID(), "Ops")

	level := 4
	require.NoError(t, r.SetHierarchyLevel(&level))
	require.NoError(t, repo.Update(ctx, r))

	got, err := repo.GetInOrganization(ctx, org.ID(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, 4, got.HierarchyLevel())

	require.NoError(t, got.SetHierarchyLevel(nil))
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Nil(t, got.StoredHierarchyLevel())

	other := createTestOrganization(t, gdb, "Globex")
	_, err = repo.GetInOrganization(ctx, other.ID(), r.ID())
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestAppRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	apps := NewAppRepository(gdb)
	access := NewAppAccessRepository(gdb)

	crm, err := apps.GetBySlug(ctx, "mero-crm")
	require.NoError(t, err)
	assert.True(t, crm.Price().Equal(decimal.RequireFromString("30.00")))

	require.NoError(t, crm.ChangePrice(decimal.RequireFromString("35.50")))
	require.NoError(t, apps.Update(ctx, crm))
	crm, err = apps.GetByID(ctx, crm.ID())
	require.NoError(t, err)
	assert.True(t, crm.Price().Equal(decimal.RequireFromString("35.50")))

	org := createTestOrganization(t, gdb, "Acme")
	u := createTestUser(t, gdb, "member@example.com")
	viewer := createTestRole(t, gdb, org.ID(), "Viewer")
	editor := createTestRole(t, gdb, org.ID(), "Editor")

	first, err := access.Upsert(ctx, app.NewAccess(org.ID(), u.ID(), crm.ID(), viewer.ID(), ""))
	require.NoError(t, err)
	second, err := access.Upsert(ctx, app.NewAccess(org.ID(), u.ID(), crm.ID(), editor.ID(), ""))
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, editor.ID(), second.RoleID())
}

func TestPaymentRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewPaymentRepository(gdb, logger.Nop())
	org := createTestOrganization(t, gdb, "Acme")

	p, err := payment.NewPayment(org.ID(), payment.GatewayStripe, decimal.RequireFromString("30.00"), "USD", "crm")
	require.NoError(t, err)
	p.BindGatewaySession("cs_test_123")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByGatewaySessionID(ctx, "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, p.ID(), got.ID())

	_, err = got.MarkCompleted()
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.True(t, got.IsCompleted())
	assert.NotNil(t, got.CompletedAt())

	_, err = repo.GetByGatewaySessionID(ctx, "cs_missing")
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestFileUploadAndWarehouseRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	org := createTestOrganization(t, gdb, "Acme")
	u := createTestUser(t, gdb, "up@example.com")

	orgID := org.ID()
	f, err := upload.NewFileUpload(u.ID(), &orgID, "logo.png", "image/png", 1024, nil)
	require.NoError(t, err)
	uploads := NewFileUploadRepository(gdb)
	require.NoError(t, uploads.Create(ctx, f))
	got, err := uploads.GetByID(ctx, f.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1024), got.Size())

	warehouses := NewWarehouseRepository(gdb)
	central, err := warehouse.NewWarehouse(org.ID(), "Central", "C1", "", "")
	require.NoError(t, err)
	transit, err := warehouse.NewWarehouse(org.ID(), "Border", "B1", "", warehouse.TypeTransit)
	require.NoError(t, err)
	require.NoError(t, warehouses.Create(ctx, central))
	require.NoError(t, warehouses.Create(ctx, transit))

	all, err := warehouses.ListByOrganization(ctx, org.ID(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Border", all[0].Name())

	onlyTransit, err := warehouses.ListByOrganization(ctx, org.ID(), warehouse.TypeTransit)
	require.NoError(t, err)
	require.Len(t, onlyTransit, 1)
	assert.Equal(t, transit.ID(), onlyTransit[0].ID())
}

func TestSessionRepository_RevokeAllForUser(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(gdb)
	u := createTestUser(t, gdb, "owner@example.com")
	other := createTestUser(t, gdb, "other@example.com")

	for _, owner := range []string{u.ID(), u.ID(), other.ID()} {
		s := user.NewSession(owner, nil, "", "", time.Hour)
		s.SetRefreshTokenHash("hash")
		require.NoError(t, repo.Create(ctx, s))
	}

	n, err := repo.RevokeAllForUser(ctx, u.ID(), biztime.NowUTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	active, err := repo.CountActive(ctx, biztime.NowUTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	n, err = repo.RevokeAllForUser(ctx, u.ID(), biztime.NowUTC())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestActionTokenRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	repo := NewActionTokenRepository(gdb)
	u := createTestUser(t, gdb, "reset@example.com")

	tok := user.NewActionToken(u.ID(), user.PurposePasswordReset, "digest-1", time.Hour)
	require.NoError(t, repo.Create(ctx, tok))
	second := user.NewActionToken(u.ID(), user.PurposePasswordReset, "digest-2", time.Hour)
	require.NoError(t, repo.Create(ctx, second))

	_, err := repo.GetByHash(ctx, user.PurposeEmailVerification, "digest-1")
	assert.ErrorIs(t, err, user.ErrActionTokenNotFound)

	got, err := repo.GetByHash(ctx, user.PurposePasswordReset, "digest-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.UserID())
	assert.Nil(t, got.UsedAt())

	require.NoError(t, got.Use())
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByHash(ctx, user.PurposePasswordReset, "digest-1")
	require.NoError(t, err)
	assert.NotNil(t, got.UsedAt())

	require.NoError(t, repo.InvalidateForUser(ctx, u.ID(), user.PurposePasswordReset, biztime.NowUTC()))
	got, err = repo.GetByHash(ctx, user.PurposePasswordReset, "digest-2")
	require.NoError(t, err)
	assert.ErrorIs(t, got.Use(), user.ErrActionTokenInvalid)
}
