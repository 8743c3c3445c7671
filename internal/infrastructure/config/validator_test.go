package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	require.NoError(t, NewValidator().Validate(GetDefaultConfig()))
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, 900*time.Second, cfg.Cache.TTL)
	assert.Equal(t, SpotFreshnessPerKey, cfg.Cache.SpotFreshness)
	assert.Equal(t, 10*time.Second, cfg.Upstreams.Bacen.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Upstreams.CoinGecko.Timeout)
	assert.Equal(t, 30, cfg.Upstreams.Bacen.WindowDays)
	assert.Equal(t, "memory", cfg.Cache.Backend)
}

func TestValidate_Errors(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name          string
		mutate        func(c *Config)
		errorContains string
	}{
		{
			name:          "Inválido - puerto fuera de rango",
			mutate:        func(c *Config) { c.Server.Port = 70000 },
			errorContains: "invalid port",
		},
		{
			name:          "Inválido - shutdown timeout cero",
			mutate:        func(c *Config) { c.Server.ShutdownTimeout = 0 },
			errorContains: "shutdown_timeout must be positive",
		},
		{
			name:          "Inválido - backend desconocido",
			mutate:        func(c *Config) { c.Cache.Backend = "memcached" },
			errorContains: "invalid cache backend",
		},
		{
			name:          "Inválido - TTL cero",
			mutate:        func(c *Config) { c.Cache.TTL = 0 },
			errorContains: "TTL must be positive",
		},
		{
			name:          "Inválido - TTL muy largo",
			mutate:        func(c *Config) { c.Cache.TTL = 25 * time.Hour },
			errorContains: "TTL too long",
		},
		{
			name:          "Inválido - modo de frescura",
			mutate:        func(c *Config) { c.Cache.SpotFreshness = "global" },
			errorContains: "invalid spot_freshness",
		},
		{
			name: "Inválido - redis sin puerto",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.Redis.Addr = "localhost"
			},
			errorContains: "expected host:port",
		},
		{
			name: "Inválido - redis DB",
			mutate: func(c *Config) {
				c.Cache.Backend = "redis"
				c.Cache.Redis.DB = 16
			},
			errorContains: "invalid redis DB",
		},
		{
			name:          "Inválido - URL de BACEN sin esquema http",
			mutate:        func(c *Config) { c.Upstreams.Bacen.BaseURL = "ftp://api.bcb.gov.br" },
			errorContains: "bacen base_url scheme",
		},
		{
			name:          "Inválido - ventana de BACEN",
			mutate:        func(c *Config) { c.Upstreams.Bacen.WindowDays = 0 },
			errorContains: "window_days",
		},
		{
			name:          "Inválido - timeout de CoinGecko",
			mutate:        func(c *Config) { c.Upstreams.CoinGecko.Timeout = 0 },
			errorContains: "coingecko timeout must be positive",
		},
		{
			name:          "Inválido - coin id vacío",
			mutate:        func(c *Config) { c.Upstreams.CoinGecko.CoinID = "" },
			errorContains: "coin_id cannot be empty",
		},
		{
			name:          "Inválido - rate limit sin capacidad",
			mutate:        func(c *Config) { c.RateLimit.Capacity = 0 },
			errorContains: "capacity must be positive",
		},
		{
			name: "Inválido - auth sin api key",
			mutate: func(c *Config) {
				c.Auth.Enabled = true
				c.Auth.APIKey = ""
			},
			errorContains: "api_key cannot be empty",
		},
		{
			name:          "Inválido - nivel de log",
			mutate:        func(c *Config) { c.Logging.Level = "verbose" },
			errorContains: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)

			err := validator.Validate(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestValidate_RateLimitDisabledSkipsChecks(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.Capacity = 0

	assert.NoError(t, NewValidator().Validate(cfg))
}
