package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс для работы с кешем.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error

	Delete(ctx context.Context, key string) error

	// DeletePrefix удаляет все ключи, начинающиеся с prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	Exists(ctx context.Context, key string) (bool, error)
}
