// Package cache содержит реализацию кэширования с использованием Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/ports/cache"
	"foodgram/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet          = "get"
	LogMethodSet          = "set"
	LogMethodDelete       = "delete"
	LogMethodDeletePrefix = "delete_prefix"
	LogMethodExists       = "exists"

	ErrorFailedToGet    = "failed to get value from redis"
	ErrorFailedToSet    = "failed to set value in redis"
	ErrorFailedToDelete = "failed to delete value from redis"
	ErrorFailedToScan   = "failed to scan keys in redis"
	ErrorFailedToCheck  = "failed to check key in redis"
)

const scanBatch = 100

// RedisCache реализует интерфейс Cache с использованием Redis.
type RedisCache struct {
	client     redis.UniversalClient
	defaultTTL time.Duration
}

// NewRedisCache создает кэш поверх уже подключенного клиента.
func NewRedisCache(client redis.UniversalClient, defaultTTL time.Duration) cache.Cache {
	return &RedisCache{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

// Get получает значение по ключу. Отсутствующий ключ возвращает nil без ошибки.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log(ctx).Error(ctx, ErrorFailedToGet,
			zap.String("method", LogMethodGet), zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set устанавливает значение для ключа с временем жизни.
// Нулевой ttl заменяется временем жизни по умолчанию.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToSet,
			zap.String("method", LogMethodSet), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Delete удаляет значение по ключу.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToDelete,
			zap.String("method", LogMethodDelete), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}

	return nil
}

// DeletePrefix удаляет все ключи с заданным префиксом.
func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodDeletePrefix), zap.String("prefix", prefix))

	iter := c.client.Scan(ctx, 0, prefix+"*", scanBatch).Iterator()
	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
				return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		log.Error(ctx, ErrorFailedToScan, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToScan, err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Error(ctx, ErrorFailedToDelete, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
		}
	}

	return nil
}

// Exists проверяет наличие ключа.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToCheck,
			zap.String("method", LogMethodExists), zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCheck, err)
	}
	return n > 0, nil
}
