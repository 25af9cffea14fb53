package config

import (
	"fmt"
	"strings"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"FOODGRAM_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"FOODGRAM_HTTP_PORT" env-default:"8000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"FOODGRAM_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"FOODGRAM_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	BodyLimit    int           `yaml:"body_limit" env:"FOODGRAM_HTTP_BODY_LIMIT" env-default:"10485760"`
	// PublicURL используется для ссылок next/previous в пагинации.
	PublicURL string `yaml:"public_url" env:"FOODGRAM_HTTP_PUBLIC_URL" env-default:""`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetPublicURL возвращает базовый URL без завершающего слеша.
func (c *HTTPConfig) GetPublicURL() string {
	return strings.TrimRight(c.PublicURL, "/")
}
