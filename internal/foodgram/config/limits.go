package config

import "time"

// RateLimitConfig ограничивает частоту попыток входа с одного IP.
type RateLimitConfig struct {
	LoginRPS   float64 `yaml:"login_rps" env:"FOODGRAM_RATE_LIMIT_LOGIN_RPS" env-default:"1"`
	LoginBurst int     `yaml:"login_burst" env:"FOODGRAM_RATE_LIMIT_LOGIN_BURST" env-default:"5"`
	// IdleTTL - через сколько забывается IP без запросов.
	IdleTTL time.Duration `yaml:"idle_ttl" env:"FOODGRAM_RATE_LIMIT_IDLE_TTL" env-default:"10m"`
}

// PaginationConfig задает размер страницы списков.
type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"FOODGRAM_PAGE_SIZE" env-default:"6"`
	MaxLimit     int `yaml:"max_limit" env:"FOODGRAM_PAGE_SIZE_MAX" env-default:"100"`
}
