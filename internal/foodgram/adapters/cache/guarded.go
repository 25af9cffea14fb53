package cache

import (
	"context"
	"fmt"
	"time"

	"foodgram/internal/foodgram/ports/cache"
	"foodgram/pkg/resilience"
)

const errCtxGuarded = "guarded cache"

// GuardedCache пропускает обращения к кэшу через circuit breaker.
// Пока breaker открыт, операции сразу возвращают resilience.ErrCircuitOpen,
// и вызывающий код уходит в базу без ожидания таймаутов Redis.
type GuardedCache struct {
	inner   cache.Cache
	breaker *resilience.CircuitBreaker
}

// NewGuardedCache оборачивает inner.
func NewGuardedCache(inner cache.Cache, breaker *resilience.CircuitBreaker) cache.Cache {
	return &GuardedCache{inner: inner, breaker: breaker}
}

func (g *GuardedCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := g.guard(ctx, func() error {
		var err error
		value, err = g.inner.Get(ctx, key)
		return err
	})
	return value, err
}

func (g *GuardedCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return g.guard(ctx, func() error {
		return g.inner.Set(ctx, key, value, expiration)
	})
}

func (g *GuardedCache) Delete(ctx context.Context, key string) error {
	return g.guard(ctx, func() error {
		return g.inner.Delete(ctx, key)
	})
}

func (g *GuardedCache) DeletePrefix(ctx context.Context, prefix string) error {
	return g.guard(ctx, func() error {
		return g.inner.DeletePrefix(ctx, prefix)
	})
}

func (g *GuardedCache) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := g.guard(ctx, func() error {
		var err error
		exists, err = g.inner.Exists(ctx, key)
		return err
	})
	return exists, err
}

func (g *GuardedCache) guard(ctx context.Context, fn func() error) error {
	if err := g.breaker.Execute(ctx, fn); err != nil {
		return fmt.Errorf("%s: %w", errCtxGuarded, err)
	}
	return nil
}
