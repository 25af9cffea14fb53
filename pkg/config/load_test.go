package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/pkg/config"
)

type sampleConfig struct {
	Host string `yaml:"host" env:"SAMPLE_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"SAMPLE_PORT" env-default:"8080"`
}

func TestLoad_EnvDefaults(t *testing.T) {
	cfg, err := config.Load[sampleConfig](context.Background(), "sample", "")
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SAMPLE_PORT", "9090")

	cfg, err := config.Load[sampleConfig](context.Background(), "sample", "")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	cfg, err := config.Load[sampleConfig](context.Background(), "sample", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("host: db.internal\nport: 7000\n"), 0o600))

	cfg, err := config.Load[sampleConfig](context.Background(), "sample", path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SAMPLE_PORT", "not-a-number")

	cfg, err := config.Load[sampleConfig](context.Background(), "sample", "")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
