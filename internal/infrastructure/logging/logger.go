package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// StructuredLogger implementa la interfaz Logger sobre logrus
type StructuredLogger struct {
	config *LoggerConfig
	logger *logrus.Logger
}

// NewStructuredLogger crea un nuevo logger estructurado
func NewStructuredLogger(config *LoggerConfig) (*StructuredLogger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	return &StructuredLogger{
		config: config,
		logger: newLogrus(config),
	}, nil
}

// newLogrus construye la instancia de logrus según la configuración
func newLogrus(config *LoggerConfig) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(config.Output)
	l.SetLevel(toLogrusLevel(config.Level))

	switch config.Format {
	case FormatText:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			DisableColors:   true,
		})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: FieldTimestamp,
				logrus.FieldKeyMsg:  FieldMessage,
			},
		})
	}
	return l
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// log escribe una entrada de log estructurada
func (sl *StructuredLogger) log(ctx context.Context, level LogLevel, message string, fields Fields) {
	lvl := toLogrusLevel(level)
	if !sl.logger.IsLevelEnabled(lvl) {
		return
	}

	sl.logger.WithFields(sl.entryFields(ctx, fields)).Log(lvl, message)
}

// entryFields combina los campos del servicio, el request ID y los del llamador
func (sl *StructuredLogger) entryFields(ctx context.Context, fields Fields) logrus.Fields {
	out := logrus.Fields{
		FieldService: sl.config.Service,
	}
	if sl.config.Version != "" {
		out[FieldVersion] = sl.config.Version
	}
	if sl.config.Environment != "" {
		out["environment"] = sl.config.Environment
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		out[FieldRequestID] = requestID
	}

	for k, v := range fields {
		out[k] = v
	}
	return out
}

// Debug logs a debug message
func (sl *StructuredLogger) Debug(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelDebug, message, fields)
}

// Info logs an info message
func (sl *StructuredLogger) Info(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelInfo, message, fields)
}

// Warn logs a warning message
func (sl *StructuredLogger) Warn(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelWarn, message, fields)
}

// Error logs an error message
func (sl *StructuredLogger) Error(ctx context.Context, message string, fields Fields) {
	sl.log(ctx, LevelError, message, fields)
}

// WarnWithError logs a warning message with error details
func (sl *StructuredLogger) WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelWarn, message, withError(fields, err))
}

// ErrorWithError logs an error message with error details
func (sl *StructuredLogger) ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	sl.log(ctx, LevelError, message, withError(fields, err))
}

// SetLevel establece el nivel de logging
func (sl *StructuredLogger) SetLevel(level LogLevel) {
	sl.config.Level = level
	sl.logger.SetLevel(toLogrusLevel(level))
}

// GetLevel retorna el nivel actual de logging
func (sl *StructuredLogger) GetLevel() LogLevel {
	return sl.config.Level
}
