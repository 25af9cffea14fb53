package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/pkg/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.GetAddress())
	assert.Equal(t, "foodgram", cfg.Postgres.Database)
	assert.Equal(t, "migrations/foodgram", cfg.Postgres.MigrationsDir)
	assert.Equal(t, 6, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 24*time.Hour, cfg.JWT.GetAccessTokenTTL())
	assert.Equal(t, 5*time.Second, cfg.Shutdown.GetTimeout())
	assert.Equal(t, logger.Development, cfg.Logging.GetEnvironment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FOODGRAM_HTTP_PORT", "9090")
	t.Setenv("FOODGRAM_LOGGER_MODE", "production")
	t.Setenv("FOODGRAM_PAGE_SIZE", "10")
	t.Setenv("FOODGRAM_HTTP_PUBLIC_URL", "https://foodgram.example/")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, logger.Production, cfg.Logging.GetEnvironment())
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, "https://foodgram.example", cfg.HTTP.GetPublicURL())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodgram.yml")
	content := "postgres:\n  host: db\n  port: 6432\nredis:\n  host: cache\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 6432, cfg.Postgres.Port)
	assert.Equal(t, "cache:6379", cfg.Redis.GetAddress())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("FOODGRAM_HTTP_PORT", "not-a-number")

	_, err := Load(context.Background(), "")
	require.Error(t, err)
}

func TestJWTConfig_InvalidTTLFallsBack(t *testing.T) {
	c := JWTConfig{AccessTokenTTL: "soon"}
	assert.Equal(t, 24*time.Hour, c.GetAccessTokenTTL())
}

func TestPostgresConfig_ConnectionStrings(t *testing.T) {
	p := PostgresConfig{Host: "h", Port: 5432, User: "u", Password: "p", Database: "d"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", p.GetDSN())
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", p.GetConnectionURL())
}

func TestRedisConfig_ClientConfig(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380, PoolSize: 3, ConnectTimeout: time.Second}
	c := r.ClientConfig()
	assert.Equal(t, "cache:6380", c.Address())
	assert.Equal(t, 3, c.PoolSize)
	assert.Equal(t, time.Second, c.DialTimeout)
}

func TestRedisConfig_BreakerConfig(t *testing.T) {
	r := RedisConfig{BreakerFailures: 3, BreakerOpenTimeout: time.Minute}
	c := r.BreakerConfig()
	assert.Equal(t, 3, c.FailureThreshold)
	assert.Equal(t, time.Minute, c.OpenTimeout)

	var empty RedisConfig
	assert.Equal(t, 5, empty.BreakerConfig().FailureThreshold)
}
