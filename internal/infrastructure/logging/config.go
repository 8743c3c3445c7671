package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogFormat es el formatter de logrus a usar
type LogFormat string

const (
	FormatJSON LogFormat = "json"
	FormatText LogFormat = "text"
)

const defaultServiceName = "fx-rate-service"

// LoggerConfig describe cómo construir el logger base
type LoggerConfig struct {
	Level       LogLevel
	Format      LogFormat
	Output      io.Writer
	Service     string
	Version     string
	Environment string
}

// DefaultConfig: info, JSON a stdout
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:       LevelInfo,
		Format:      FormatJSON,
		Output:      os.Stdout,
		Service:     defaultServiceName,
		Environment: "development",
	}
}

// NewConfig arma la configuración a partir de la sección logging del config
func NewConfig(level, format, environment string) *LoggerConfig {
	cfg := DefaultConfig()
	cfg.Level = LogLevelFromString(level)
	cfg.Format = LogFormatFromString(format)
	if environment != "" {
		cfg.Environment = environment
	}
	return cfg
}

// WithOutput redirige la salida (tests)
func (c *LoggerConfig) WithOutput(output io.Writer) *LoggerConfig {
	c.Output = output
	return c
}

func (c *LoggerConfig) Validate() error {
	switch c.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return &ConfigError{Field: "level", Value: string(c.Level), Message: "invalid log level"}
	}
	if c.Format != FormatJSON && c.Format != FormatText {
		return &ConfigError{Field: "format", Value: string(c.Format), Message: "invalid log format"}
	}
	if c.Output == nil {
		return &ConfigError{Field: "output", Value: "nil", Message: "output writer cannot be nil"}
	}
	if c.Service == "" {
		return &ConfigError{Field: "service", Message: "service name cannot be empty"}
	}
	return nil
}

// ConfigError indica qué campo de LoggerConfig es inválido
type ConfigError struct {
	Field   string
	Value   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logging config %s=%q: %s", e.Field, e.Value, e.Message)
}

// LogLevelFromString acepta mayúsculas o minúsculas; lo desconocido es INFO
func LogLevelFromString(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogFormatFromString: "text" o JSON para cualquier otro valor
func LogFormatFromString(format string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(format), string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}
