// Package lock provides a Redis backed distributed mutex.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/merojugx/mero/internal/shared/logger"
)

// ErrNotObtained is returned when another holder keeps the lock past the wait time.
var ErrNotObtained = errors.New("lock held by another process")

const (
	DefaultTTL      = 10 * time.Minute
	DefaultWaitTime = 30 * time.Second
	retryInterval   = 500 * time.Millisecond
)

// RedisLocker hands out locks that expire after ttl unless released.
// It satisfies migration.Locker.
type RedisLocker struct {
	client   *redislock.Client
	ttl      time.Duration
	waitTime time.Duration
	logger   logger.Interface
}

func NewRedisLocker(client redis.UniversalClient, ttl, waitTime time.Duration, log logger.Interface) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if waitTime < 0 {
		waitTime = 0
	}
	return &RedisLocker{
		client:   redislock.New(client),
		ttl:      ttl,
		waitTime: waitTime,
		logger:   log,
	}
}

// Obtain blocks for up to the wait time. The returned release func is safe to
// call more than once.
func (l *RedisLocker) Obtain(ctx context.Context, key string) (func(), error) {
	obtainCtx := ctx
	if l.waitTime > 0 {
		var cancel context.CancelFunc
		obtainCtx, cancel = context.WithTimeout(ctx, l.waitTime)
		defer cancel()
	}

	opts := &redislock.Options{}
	if l.waitTime > 0 {
		opts.RetryStrategy = redislock.LinearBackoff(retryInterval)
	}

	lk, err := l.client.Obtain(obtainCtx, key, l.ttl, opts)
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrNotObtained, key)
		}
		return nil, fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	l.logger.Debugw("lock obtained", "key", key, "ttl", l.ttl)

	var once sync.Once
	return func() {
		once.Do(func() { l.release(lk, key) })
	}, nil
}

func (l *RedisLocker) release(lk *redislock.Lock, key string) {
	releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := lk.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		l.logger.Warnw("failed to release lock", "key", key, "error", err)
	}
}
