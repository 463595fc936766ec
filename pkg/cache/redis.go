package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/skilllens/pkg/logger"
)

// Store is a thin JSON cache over Redis. A Store without a client is
// disabled: reads miss and writes are dropped.
type Store struct {
	rdb *redis.Client
	log *logger.Logger
}

// New connects to redisURL. An empty or unreachable URL yields a disabled store.
func New(ctx context.Context, redisURL string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{log: log}
	if redisURL == "" {
		log.Info("cache: redis not configured, caching disabled")
		return s
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("cache: invalid redis URL, caching disabled", "error", err)
		return s
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("cache: redis unreachable, caching disabled", "error", err)
		_ = rdb.Close()
		return s
	}
	log.Info("cache: redis connected", "addr", opts.Addr)
	s.rdb = rdb
	return s
}

// NewWithClient wraps an existing client.
func NewWithClient(rdb *redis.Client, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{rdb: rdb, log: log}
}

func (s *Store) Enabled() bool { return s != nil && s.rdb != nil }

// GetJSON decodes the value at key into dst and reports whether it was found.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) bool {
	if !s.Enabled() {
		return false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("cache: get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.log.Warn("cache: corrupt entry dropped", "key", key, "error", err)
		_ = s.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// SetJSON stores v at key for ttl. Failures are logged, not returned.
func (s *Store) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if !s.Enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		s.log.Warn("cache: set failed", "key", key, "error", err)
	}
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if !s.Enabled() || len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Mark sets a presence flag at key that expires after ttl.
func (s *Store) Mark(ctx context.Context, key string, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Set(ctx, key, "1", ttl).Err()
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Close()
}
