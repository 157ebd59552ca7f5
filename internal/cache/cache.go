package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// AudioStore holds raw uploads for the lifetime of one request. It is
// advisory: failures are logged and reported as false/absent, never returned.
type AudioStore interface {
	Put(ctx context.Context, key string, audio []byte, ttl time.Duration) bool
	Get(ctx context.Context, key string) ([]byte, bool)
	Delete(ctx context.Context, key string) bool
	Exists(ctx context.Context, key string) bool
}
