package config

import (
	"time"
)

// Spot freshness modes
const (
	SpotFreshnessPerKey = "per_key"
	SpotFreshnessShared = "shared"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Upstreams UpstreamsConfig `yaml:"upstreams" mapstructure:"upstreams"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// CacheConfig contains cache system configuration
type CacheConfig struct {
	Backend       string        `yaml:"backend" mapstructure:"backend"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
	SpotFreshness string        `yaml:"spot_freshness" mapstructure:"spot_freshness"`
	Redis         RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Addr           string `yaml:"addr" mapstructure:"addr"`
	Password       string `yaml:"password" mapstructure:"password"`
	DB             int    `yaml:"db" mapstructure:"db"`
	KeyPrefix      string `yaml:"key_prefix" mapstructure:"key_prefix"`
	ConnectRetries uint   `yaml:"connect_retries" mapstructure:"connect_retries"`
}

// UpstreamsConfig agrupa los proveedores de cotizaciones
type UpstreamsConfig struct {
	Bacen     BacenConfig     `yaml:"bacen" mapstructure:"bacen"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
}

// BacenConfig contiene la configuración de la API SGS del Banco Central
type BacenConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	WindowDays int           `yaml:"window_days" mapstructure:"window_days"`
}

// CoinGeckoConfig contiene la configuración de CoinGecko
type CoinGeckoConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CoinID     string        `yaml:"coin_id" mapstructure:"coin_id"`
	VsCurrency string        `yaml:"vs_currency" mapstructure:"vs_currency"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled    bool `yaml:"enabled" mapstructure:"enabled"`
	Capacity   int  `yaml:"capacity" mapstructure:"capacity"`
	RefillRate int  `yaml:"refill_rate" mapstructure:"refill_rate"`
}

// AuthConfig contains authentication configuration
type AuthConfig struct {
	Enabled     bool     `yaml:"enabled" mapstructure:"enabled"`
	APIKey      string   `yaml:"api_key" mapstructure:"api_key"`
	HeaderName  string   `yaml:"header_name" mapstructure:"header_name"`
	UnauthPaths []string `yaml:"unauth_paths" mapstructure:"unauth_paths"`
}

// LoggingConfig contains logging system configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
		},
		Cache: CacheConfig{
			Backend:       "memory",
			TTL:           900 * time.Second,
			SpotFreshness: SpotFreshnessPerKey,
			Redis: RedisConfig{
				Addr:           "localhost:6379",
				DB:             0,
				KeyPrefix:      "fx:",
				ConnectRetries: 3,
			},
		},
		Upstreams: UpstreamsConfig{
			Bacen: BacenConfig{
				BaseURL:    "https://api.bcb.gov.br/dados/serie",
				Timeout:    10 * time.Second,
				WindowDays: 30,
			},
			CoinGecko: CoinGeckoConfig{
				BaseURL:    "https://api.coingecko.com/api/v3",
				Timeout:    10 * time.Second,
				CoinID:     "bitcoin",
				VsCurrency: "brl",
			},
		},
		RateLimit: RateLimitConfig{
			Enabled:    true,
			Capacity:   100,
			RefillRate: 10,
		},
		Auth: AuthConfig{
			Enabled:     false, // Disabled by default
			HeaderName:  "X-API-Key",
			UnauthPaths: []string{"/", "/health", "/ready", "/metrics", "/swagger/"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
