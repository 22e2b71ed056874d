package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/shared/logger"
)

func TestOrganizationSettingRepository_DuplicateKey(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOrganizationSettingRepository(gdb, logger.Nop())
	ctx := context.Background()

	acme := createTestOrganization(t, gdb, "Acme")
	globex := createTestOrganization(t, gdb, "Globex")

	first, err := setting.NewOrganizationSetting(acme.ID(), "currency", "NPR")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	t.Run("same key in the same organization is rejected", func(t *testing.T) {
		dup, err := setting.NewOrganizationSetting(acme.ID(), "currency", "USD")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), setting.ErrDuplicateKey)

		stored, err := repo.Get(ctx, acme.ID(), "currency")
		require.NoError(t, err)
		assert.Equal(t, "NPR", stored.Value())
	})

	t.Run("same key in another organization is accepted", func(t *testing.T) {
		other, err := setting.NewOrganizationSetting(globex.ID(), "currency", "USD")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, other))

		stored, err := repo.Get(ctx, globex.ID(), "currency")
		require.NoError(t, err)
		assert.Equal(t, "USD", stored.Value())
	})
}

func TestOrganizationSettingRepository_UpsertAndDelete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOrganizationSettingRepository(gdb, logger.Nop())
	ctx := context.Background()
	org := createTestOrganization(t, gdb, "Acme")

	s, err := setting.NewOrganizationSetting(org.ID(), "theme", "dark")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, s))

	again, err := setting.NewOrganizationSetting(org.ID(), "theme", "light")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, again))

	list, err := repo.ListByOrganization(ctx, org.ID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "light", list[0].Value())
	assert.Equal(t, s.ID(), list[0].ID(), "upsert keeps the original row")

	require.NoError(t, repo.Delete(ctx, org.ID(), "theme"))
	assert.ErrorIs(t, repo.Delete(ctx, org.ID(), "theme"), setting.ErrSettingNotFound)
	_, err = repo.Get(ctx, org.ID(), "theme")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestOrganizationSettingRepository_RequiresOrganization(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewOrganizationSettingRepository(gdb, logger.Nop())

	s, err := setting.NewOrganizationSetting("00000000-0000-0000-0000-000000000000", "k", "v")
	require.NoError(t, err)
	assert.Error(t, repo.Create(context.Background(), s))
}

func TestSystemSettingRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewSystemSettingRepository(gdb, logger.Nop())
	ctx := context.Background()

	public, err := setting.NewSystemSetting("app_name", "Mero Jugx", "Display name", "branding", true, "")
	require.NoError(t, err)
	private, err := setting.NewSystemSetting("smtp_host", "mail.local", "", "email", false, "")
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, public))
	require.NoError(t, repo.Upsert(ctx, private))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "app_name", all[0].Key())

	email, err := repo.List(ctx, "email")
	require.NoError(t, err)
	require.Len(t, email, 1)

	pub, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, pub, 1)
	assert.Equal(t, "app_name", pub[0].Key())

	value := "Mero"
	public.Apply(setting.Patch{Value: &value}, "")
	require.NoError(t, repo.Update(ctx, public))
	got, err := repo.GetByKey(ctx, "app_name")
	require.NoError(t, err)
	assert.Equal(t, "Mero", got.Value())
	assert.True(t, got.IsPublic())

	require.NoError(t, repo.Delete(ctx, "app_name"))
	_, err = repo.GetByKey(ctx, "app_name")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "app_name"), setting.ErrSettingNotFound)
}
