package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/merojugx/mero/internal/domain/setting"
	"github.com/merojugx/mero/internal/shared/logger"
)

const (
	systemSettingKeyPrefix = "settings:system:"
	publicSettingsKey      = "settings:public"
	defaultSettingsTTL     = 5 * time.Minute
)

type cachedSystemSetting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsPublic    bool      `json:"is_public"`
	UpdatedBy   *string   `json:"updated_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCached(s *setting.SystemSetting) cachedSystemSetting {
	return cachedSystemSetting{
		ID:          s.ID(),
		Key:         s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		Category:    s.Category(),
		IsPublic:    s.IsPublic(),
		UpdatedBy:   s.UpdatedBy(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (c cachedSystemSetting) toDomain() *setting.SystemSetting {
	return setting.ReconstructSystemSetting(c.ID, c.Key, c.Value, c.Description, c.Category, c.IsPublic, c.UpdatedBy, c.CreatedAt, c.UpdatedAt)
}

// SystemSettingCache is a read-through Redis cache in front of a
// setting.SystemRepository. Redis failures are logged and the call falls
// through to the database; writes always go to the database first and then
// invalidate.
type SystemSettingCache struct {
	next   setting.SystemRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger logger.Interface
}

func NewSystemSettingCache(next setting.SystemRepository, client redis.UniversalClient, ttl time.Duration, log logger.Interface) *SystemSettingCache {
	if ttl <= 0 {
		ttl = defaultSettingsTTL
	}
	return &SystemSettingCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func SystemSettingCacheKey(key string) string {
	return systemSettingKeyPrefix + key
}

func (c *SystemSettingCache) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	cacheKey := SystemSettingCacheKey(key)

	data, err := c.client.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		var cached cachedSystemSetting
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.toDomain(), nil
		}
		c.logger.Warnw("discarding corrupt cached setting", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("settings cache unavailable, reading from database", "key", key, "error", err)
	}

	s, err := c.next.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	c.store(ctx, cacheKey, toCached(s))
	return s, nil
}

// List is not cached; the admin console needs fresh data.
func (c *SystemSettingCache) List(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	return c.next.List(ctx, category)
}

func (c *SystemSettingCache) ListPublic(ctx context.Context) ([]*setting.SystemSetting, error) {
	data, err := c.client.Get(ctx, publicSettingsKey).Bytes()
	if err == nil {
		var cached []cachedSystemSetting
		if err := json.Unmarshal(data, &cached); err == nil {
			out := make([]*setting.SystemSetting, 0, len(cached))
			for _, s := range cached {
				out = append(out, s.toDomain())
			}
			return out, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warnw("settings cache unavailable, reading public settings from database", "error", err)
	}

	list, err := c.next.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	cached := make([]cachedSystemSetting, 0, len(list))
	for _, s := range list {
		cached = append(cached, toCached(s))
	}
	c.store(ctx, publicSettingsKey, cached)
	return list, nil
}

func (c *SystemSettingCache) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	if err := c.next.Upsert(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.Key())
	return nil
}

func (c *SystemSettingCache) Update(ctx context.Context, s *setting.SystemSetting) error {
	if err := c.next.Update(ctx, s); err != nil {
		return err
	}
	c.invalidate(ctx, s.Key())
	return nil
}

func (c *SystemSettingCache) Delete(ctx context.Context, key string) error {
	if err := c.next.Delete(ctx, key); err != nil {
		return err
	}
	c.invalidate(ctx, key)
	return nil
}

func (c *SystemSettingCache) store(ctx context.Context, cacheKey string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("failed to populate settings cache", "cache_key", cacheKey, "error", err)
	}
}

func (c *SystemSettingCache) invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, SystemSettingCacheKey(key), publicSettingsKey).Err(); err != nil {
		c.logger.Warnw("failed to invalidate settings cache", "key", key, "error", err)
	}
}
