package ratelimit

import (
	"context"
	"time"
)

type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	// Allow records one hit for key and reports whether it is inside the rule.
	Allow(ctx context.Context, key string, rule Rule) (bool, error)
	Reset(ctx context.Context, key string) error
}
