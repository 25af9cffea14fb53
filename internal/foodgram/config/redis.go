package config

import (
	"fmt"
	"time"

	"foodgram/pkg/db/redis"
	"foodgram/pkg/resilience"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host            string        `yaml:"host" env:"FOODGRAM_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"FOODGRAM_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"FOODGRAM_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"FOODGRAM_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"FOODGRAM_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"FOODGRAM_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"FOODGRAM_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"FOODGRAM_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"FOODGRAM_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"FOODGRAM_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"FOODGRAM_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"FOODGRAM_REDIS_DEFAULT_TTL" env-default:"15m"`

	// Circuit breaker для кэша каталога.
	BreakerFailures    int           `yaml:"breaker_failures" env:"FOODGRAM_REDIS_BREAKER_FAILURES" env-default:"5"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"FOODGRAM_REDIS_BREAKER_OPEN_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientConfig преобразует настройки в конфигурацию общего клиента Redis.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:            c.Host,
		Port:            c.Port,
		Password:        c.Password,
		DB:              c.DB,
		PoolSize:        c.PoolSize,
		MinIdle:         c.MinIdle,
		DialTimeout:     c.ConnectTimeout,
		ReadTimeout:     c.ReadTimeout,
		WriteTimeout:    c.WriteTimeout,
		IdleTimeout:     c.IdleTimeout,
		MaxConnLifetime: c.MaxConnLifetime,
	}
}

// BreakerConfig возвращает настройки circuit breaker для кэша.
func (c *RedisConfig) BreakerConfig() resilience.Config {
	cfg := resilience.DefaultConfig()
	if c.BreakerFailures > 0 {
		cfg.FailureThreshold = c.BreakerFailures
	}
	if c.BreakerOpenTimeout > 0 {
		cfg.OpenTimeout = c.BreakerOpenTimeout
	}
	return cfg
}
