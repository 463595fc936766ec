package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by cache.Store.
type Pinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// RedisChecker passes when Redis is not configured; it is optional.
type RedisChecker struct {
	store Pinger
}

func NewRedisChecker(store Pinger) *RedisChecker {
	return &RedisChecker{store: store}
}

func (c *RedisChecker) Name() string { return "redis" }

func (c *RedisChecker) Check(ctx context.Context) error {
	if c.store == nil || !c.store.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.store.Ping(ctx)
}
