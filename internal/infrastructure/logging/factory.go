package logging

import (
	"fmt"
	"sync"
)

// LoggerSet contiene todos los loggers especializados
type LoggerSet struct {
	Base        Logger
	HTTP        HTTPLogger
	ExternalAPI ExternalAPILogger
	Cache       CacheLogger
	Rates       RatesLogger
	Security    SecurityLogger
}

// NewLoggerSet construye el logger base y sus derivados de dominio
func NewLoggerSet(config *LoggerConfig) (*LoggerSet, error) {
	base, err := NewStructuredLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create base logger: %w", err)
	}
	return NewLoggerSetFrom(base), nil
}

// NewLoggerSetFrom deriva los loggers de dominio de un logger existente
func NewLoggerSetFrom(base Logger) *LoggerSet {
	return &LoggerSet{
		Base:        base,
		HTTP:        NewHTTPLogger(base),
		ExternalAPI: NewExternalAPILogger(base),
		Cache:       NewCacheLogger(base),
		Rates:       NewRatesLogger(base),
		Security:    NewSecurityLogger(base),
	}
}

var (
	globalMu      sync.RWMutex
	globalLoggers *LoggerSet
)

// InitializeGlobalLoggers inicializa los loggers globales
func InitializeGlobalLoggers(config *LoggerConfig) error {
	set, err := NewLoggerSet(config)
	if err != nil {
		return fmt.Errorf("failed to initialize global loggers: %w", err)
	}

	SetGlobalLoggers(set)
	return nil
}

// SetGlobalLoggers reemplaza el set global (útil en tests)
func SetGlobalLoggers(set *LoggerSet) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLoggers = set
}

// GetGlobalLoggers retorna todos los loggers globales
func GetGlobalLoggers() *LoggerSet {
	globalMu.RLock()
	set := globalLoggers
	globalMu.RUnlock()
	if set != nil {
		return set
	}

	// Fallback en caso de que no se hayan inicializado los loggers globales
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLoggers == nil {
		base, _ := NewStructuredLogger(DefaultConfig())
		globalLoggers = NewLoggerSetFrom(base)
	}
	return globalLoggers
}
