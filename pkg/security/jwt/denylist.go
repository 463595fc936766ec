package jwt

import (
	"context"
	"time"
)

const denyPrefix = "skilllens:jwt:deny:"

// FlagStore is satisfied by cache.Store.
type FlagStore interface {
	Mark(ctx context.Context, key string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Denylist records revoked token ids. It implements auth.TokenRevoker.
type Denylist struct {
	store FlagStore
}

func NewDenylist(store FlagStore) *Denylist { return &Denylist{store: store} }

func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.store.Mark(ctx, denyPrefix+tokenID, ttl)
}

func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return d.store.Exists(ctx, denyPrefix+tokenID)
}
