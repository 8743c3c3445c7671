package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Límites aceptados
const (
	maxShutdownTimeout = 5 * time.Minute
	maxCacheTTL        = 24 * time.Hour
	maxUpstreamTimeout = 2 * time.Minute
	maxRedisDB         = 15
	maxConnectRetries  = 10
	maxBucketCapacity  = 10000
	maxRefillRate      = 1000
)

// Validator revisa una Config ya cargada, sección por sección
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate retorna el primer error encontrado, prefijado con la sección
func (v *Validator) Validate(cfg *Config) error {
	sections := []struct {
		name  string
		check func() error
	}{
		{"server", func() error { return validateServer(cfg.Server) }},
		{"cache", func() error { return validateCache(cfg.Cache) }},
		{"upstreams", func() error { return validateUpstreams(cfg.Upstreams) }},
		{"rate limit", func() error { return validateRateLimit(cfg.RateLimit) }},
		{"auth", func() error { return validateAuth(cfg.Auth) }},
		{"logging", func() error { return validateLogging(cfg.Logging) }},
	}

	for _, s := range sections {
		if err := s.check(); err != nil {
			return fmt.Errorf("%s config validation failed: %w", s.name, err)
		}
	}
	return nil
}

func validateServer(c ServerConfig) error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port: %d, must be between 1-65535", c.Port)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("shutdown_timeout must be positive, got: %v", c.ShutdownTimeout)
	case c.ShutdownTimeout > maxShutdownTimeout:
		return fmt.Errorf("shutdown_timeout too long: %v, max %v", c.ShutdownTimeout, maxShutdownTimeout)
	case c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.IdleTimeout < 0:
		return fmt.Errorf("server timeouts cannot be negative")
	}
	return nil
}

func validateCache(c CacheConfig) error {
	backends := []string{"memory", "redis"}
	if !oneOf(c.Backend, backends) {
		return fmt.Errorf("invalid cache backend: %s, must be one of: %v", c.Backend, backends)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", c.TTL)
	}
	if c.TTL > maxCacheTTL {
		return fmt.Errorf("cache TTL too long: %v, max %v", c.TTL, maxCacheTTL)
	}

	modes := []string{SpotFreshnessPerKey, SpotFreshnessShared}
	if !oneOf(c.SpotFreshness, modes) {
		return fmt.Errorf("invalid spot_freshness: %s, must be one of: %v", c.SpotFreshness, modes)
	}

	if strings.EqualFold(c.Backend, "redis") {
		return validateRedis(c.Redis)
	}
	return nil
}

func validateRedis(c RedisConfig) error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("redis addr cannot be empty")
	case !strings.Contains(c.Addr, ":"):
		return fmt.Errorf("invalid redis addr format: %s, expected host:port", c.Addr)
	case c.DB < 0 || c.DB > maxRedisDB:
		return fmt.Errorf("invalid redis DB: %d, must be between 0-%d", c.DB, maxRedisDB)
	case c.ConnectRetries > maxConnectRetries:
		return fmt.Errorf("redis connect_retries too high: %d, max %d", c.ConnectRetries, maxConnectRetries)
	}
	return nil
}

func validateUpstreams(c UpstreamsConfig) error {
	if err := validateEndpoint("bacen", c.Bacen.BaseURL, c.Bacen.Timeout); err != nil {
		return err
	}
	if c.Bacen.WindowDays < 1 || c.Bacen.WindowDays > 365 {
		return fmt.Errorf("bacen window_days must be between 1-365, got: %d", c.Bacen.WindowDays)
	}

	if err := validateEndpoint("coingecko", c.CoinGecko.BaseURL, c.CoinGecko.Timeout); err != nil {
		return err
	}
	if c.CoinGecko.CoinID == "" {
		return fmt.Errorf("coingecko coin_id cannot be empty")
	}
	if c.CoinGecko.VsCurrency == "" {
		return fmt.Errorf("coingecko vs_currency cannot be empty")
	}
	return nil
}

// validateEndpoint exige una URL http(s) con host y un timeout en (0, 2m]
func validateEndpoint(provider, rawURL string, timeout time.Duration) error {
	if rawURL == "" {
		return fmt.Errorf("%s base_url cannot be empty", provider)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s base_url: %s, error: %v", provider, rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s base_url scheme: %s, must be http or https", provider, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s base_url must have a host", provider)
	}

	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive, got: %v", provider, timeout)
	}
	if timeout > maxUpstreamTimeout {
		return fmt.Errorf("%s timeout too long: %v, max %v", provider, timeout, maxUpstreamTimeout)
	}
	return nil
}

func validateRateLimit(c RateLimitConfig) error {
	if !c.Enabled {
		return nil
	}
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("rate_limit capacity must be positive when enabled, got: %d", c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("rate_limit refill_rate must be positive when enabled, got: %d", c.RefillRate)
	case c.Capacity > maxBucketCapacity:
		return fmt.Errorf("rate_limit capacity too high: %d, max %d", c.Capacity, maxBucketCapacity)
	case c.RefillRate > maxRefillRate:
		return fmt.Errorf("rate_limit refill_rate too high: %d, max %d", c.RefillRate, maxRefillRate)
	}
	return nil
}

func validateAuth(c AuthConfig) error {
	if !c.Enabled {
		return nil
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key cannot be empty when auth is enabled")
	}
	if c.HeaderName == "" {
		return fmt.Errorf("header_name cannot be empty when auth is enabled")
	}
	return nil
}

func validateLogging(c LoggingConfig) error {
	levels := []string{"debug", "info", "warn", "error"}
	if !oneOf(c.Level, levels) {
		return fmt.Errorf("invalid log level: %s, must be one of: %v", c.Level, levels)
	}
	formats := []string{"json", "text"}
	if !oneOf(c.Format, formats) {
		return fmt.Errorf("invalid log format: %s, must be one of: %v", c.Format, formats)
	}
	return nil
}

// oneOf compara sin distinguir mayúsculas
func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, value) {
			return true
		}
	}
	return false
}
