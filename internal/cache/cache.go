package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache is the slice of the Redis client the service uses. No request data is
// cached; the client only backs the liveness check.
type Cache interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	PingFn  func(ctx context.Context) *redis.StatusCmd
	CloseFn func() error
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
