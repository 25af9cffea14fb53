// Package config содержит конфигурацию сервиса рецептов.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "foodgram/pkg/config"
	"foodgram/pkg/logger"
)

// ServiceName - имя сервиса в логах и конфигурации.
const ServiceName = "foodgram"

// Константы ошибок и сообщений для конфигурации.
const (
	LogConfigLoaded     = "foodgram configuration loaded"
	ErrFailedLoadConfig = "failed to load foodgram configuration"
)

// Config представляет полную конфигурацию приложения.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// Load загружает конфигурацию из файла path (если он есть) и переменных окружения.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.Int("page_size", cfg.Pagination.DefaultLimit))

	return cfg, nil
}
