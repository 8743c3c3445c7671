package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables
func (l *Loader) Load() (*Config, error) {
	l.setupViper()

	if err := l.v.ReadInConfig(); err != nil {
		// Sin config.yaml se usan solo defaults y env vars
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)

	return config, nil
}

// LoadFile carga la configuración desde un archivo explícito
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.setupViper()
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := GetDefaultConfig()
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)

	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs") // para cuando se ejecuta desde cmd/
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/fx-rate-service")

	// FX_RATE_SERVER_PORT, FX_RATE_CACHE_TTL, ...
	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("FX_RATE")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.bindEnvVars()
}

// bindEnvVars maps specific environment variables to configuration keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":                  "PORT",
		"cache.backend":                "CACHE_BACKEND",
		"cache.ttl":                    "CACHE_TTL",
		"cache.spot_freshness":         "CACHE_SPOT_FRESHNESS",
		"cache.redis.addr":             "REDIS_ADDR",
		"cache.redis.password":         "REDIS_PASSWORD",
		"cache.redis.db":               "REDIS_DB",
		"upstreams.bacen.base_url":     "BACEN_BASE_URL",
		"upstreams.bacen.timeout":      "BACEN_TIMEOUT",
		"upstreams.coingecko.base_url": "COINGECKO_BASE_URL",
		"upstreams.coingecko.timeout":  "COINGECKO_TIMEOUT",
		"logging.level":                "LOG_LEVEL",
		"logging.format":               "LOG_FORMAT",
		"rate_limit.enabled":           "RATE_LIMIT_ENABLED",
		"rate_limit.capacity":          "RATE_LIMIT_CAPACITY",
		"rate_limit.refill_rate":       "RATE_LIMIT_REFILL_RATE",
		"auth.enabled":                 "AUTH_ENABLED",
		"auth.api_key":                 "API_KEY",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, "FX_RATE_"+strings.ToUpper(strings.ReplaceAll(configKey, ".", "_")), envVar)
	}
}

// overrideWithEnvVars maneja casos especiales de env vars
func (l *Loader) overrideWithEnvVars(config *Config) {
	// AUTH_UNAUTH_PATHS como lista separada por comas
	if raw := os.Getenv("AUTH_UNAUTH_PATHS"); raw != "" {
		var paths []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) > 0 {
			config.Auth.UnauthPaths = paths
		}
	}

	config.Cache.SpotFreshness = strings.ToLower(strings.TrimSpace(config.Cache.SpotFreshness))
	config.Upstreams.CoinGecko.VsCurrency = strings.ToLower(config.Upstreams.CoinGecko.VsCurrency)
}

// GetEnvironment determina el entorno actual desde ENV vars
func GetEnvironment() string {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENVIRONMENT"))
	}
	if env == "" {
		env = "development"
	}
	return env
}
