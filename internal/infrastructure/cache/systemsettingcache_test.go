package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/shared/logger"
)

// memorySettings is an in-memory setting.SystemRepository that counts reads.
type memorySettings struct {
	items map[string]*setting.SystemSetting
	reads int
}

func newMemorySettings(items ...*setting.SystemSetting) *memorySettings {
	m := &memorySettings{items: map[string]*setting.SystemSetting{}}
	for _, s := range items {
		m.items[s.Key()] = s
	}
	return m
}

func (m *memorySettings) GetByKey(_ context.Context, key string) (*setting.SystemSetting, error) {
	m.reads++
	s, ok := m.items[key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}
	return s, nil
}

func (m *memorySettings) List(context.Context, string) ([]*setting.SystemSetting, error) {
	out := make([]*setting.SystemSetting, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	return out, nil
}

func (m *memorySettings) ListPublic(context.Context) ([]*setting.SystemSetting, error) {
	m.reads++
	var out []*setting.SystemSetting
	for _, s := range m.items {
		if s.IsPublic() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memorySettings) Upsert(_ context.Context, s *setting.SystemSetting) error {
	m.items[s.Key()] = s
	return nil
}

func (m *memorySettings) Update(_ context.Context, s *setting.SystemSetting) error {
	if _, ok := m.items[s.Key()]; !ok {
		return setting.ErrSettingNotFound
	}
	m.items[s.Key()] = s
	return nil
}

func (m *memorySettings) Delete(_ context.Context, key string) error {
	if _, ok := m.items[key]; !ok {
		return setting.ErrSettingNotFound
	}
	delete(m.items, key)
	return nil
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func mustSetting(t *testing.T, key, value string, public bool) *setting.SystemSetting {
	t.Helper()
	s, err := setting.NewSystemSetting(key, value, "", "", public, "")
	require.NoError(t, err)
	return s
}

func TestSystemSettingCache_ReadThrough(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := newMemorySettings(mustSetting(t, "app_name", "Mero Jugx", true))
	c := NewSystemSettingCache(repo, client, time.Minute, logger.Nop())
	ctx := context.Background()

	first, err := c.GetByKey(ctx, "app_name")
	require.NoError(t, err)
	assert.Equal(t, "Mero Jugx", first.Value())
	assert.True(t, mr.Exists(SystemSettingCacheKey("app_name")))

	second, err := c.GetByKey(ctx, "app_name")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 1, repo.reads, "second read is served from redis")

	ttl := mr.TTL(SystemSettingCacheKey("app_name"))
	assert.Equal(t, time.Minute, ttl)
}

func TestSystemSettingCache_WriteInvalidates(t *testing.T) {
	client, mr := setupTestRedis(t)
	s := mustSetting(t, "maintenance_mode", "false", true)
	repo := newMemorySettings(s)
	c := NewSystemSettingCache(repo, client, time.Minute, logger.Nop())
	ctx := context.Background()

	_, err := c.GetByKey(ctx, "maintenance_mode")
	require.NoError(t, err)
	_, err = c.ListPublic(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(publicSettingsKey))

	value := "true"
	s.Apply(setting.Patch{Value: &value}, "admin-1")
	require.NoError(t, c.Update(ctx, s))
	assert.False(t, mr.Exists(SystemSettingCacheKey("maintenance_mode")))
	assert.False(t, mr.Exists(publicSettingsKey))

	got, err := c.GetByKey(ctx, "maintenance_mode")
	require.NoError(t, err)
	assert.Equal(t, "true", got.Value())

	require.NoError(t, c.Delete(ctx, "maintenance_mode"))
	_, err = c.GetByKey(ctx, "maintenance_mode")
	assert.ErrorIs(t, err, setting.ErrSettingNotFound)
}

func TestSystemSettingCache_FallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	repo := newMemorySettings(mustSetting(t, "app_name", "Mero Jugx", true))
	c := NewSystemSettingCache(repo, client, time.Minute, logger.Nop())
	ctx := context.Background()

	got, err := c.GetByKey(ctx, "app_name")
	require.NoError(t, err)
	assert.Equal(t, "Mero Jugx", got.Value())

	public, err := c.ListPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	require.NoError(t, c.Upsert(ctx, mustSetting(t, "support_email", "help@example.com", false)))
}

func TestSystemSettingCache_CorruptEntryIsIgnored(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := newMemorySettings(mustSetting(t, "app_name", "Mero Jugx", true))
	c := NewSystemSettingCache(repo, client, time.Minute, logger.Nop())

	require.NoError(t, mr.Set(SystemSettingCacheKey("app_name"), "{not json"))

	got, err := c.GetByKey(context.Background(), "app_name")
	require.NoError(t, err)
	assert.Equal(t, "Mero Jugx", got.Value())
	assert.Equal(t, 1, repo.reads)
}
