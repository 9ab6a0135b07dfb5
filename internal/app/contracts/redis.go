package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}

// SequenceService hands out monotonically increasing numbers per named
// sequence, backed by an atomic store.
type SequenceService interface {
	Next(ctx context.Context, name string) (int64, error)
	EnsureAtLeast(ctx context.Context, name string, floor int64) error
}
