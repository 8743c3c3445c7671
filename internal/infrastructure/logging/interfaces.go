package logging

import (
	"context"
)

// Logger es el logger estructurado base; ctx aporta el request ID
type Logger interface {
	Debug(ctx context.Context, message string, fields Fields)
	Info(ctx context.Context, message string, fields Fields)
	Warn(ctx context.Context, message string, fields Fields)
	Error(ctx context.Context, message string, fields Fields)

	WarnWithError(ctx context.Context, message string, err error, fields Fields)
	ErrorWithError(ctx context.Context, message string, err error, fields Fields)

	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

// DomainLogger agrega "domain" a cada entrada
type DomainLogger interface {
	Logger
	Domain() string
}

type HTTPLogger interface {
	DomainLogger

	RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string)
	RequestCompleted(ctx context.Context, method, path string, statusCode int, durationMs float64)
	RequestFailed(ctx context.Context, method, path string, statusCode int, err error, durationMs float64)
}

// ExternalAPILogger registra las llamadas a BACEN y CoinGecko
type ExternalAPILogger interface {
	DomainLogger

	RequestStarted(ctx context.Context, provider, endpoint, method string)
	RequestCompleted(ctx context.Context, provider, endpoint string, statusCode int, durationMs float64)
	RequestFailed(ctx context.Context, provider, endpoint string, statusCode int, err error, durationMs float64)
}

type CacheLogger interface {
	DomainLogger

	Hit(ctx context.Context, key, operation string)
	Miss(ctx context.Context, key, operation string)
	Set(ctx context.Context, key string, ttlSeconds float64)
	CacheError(ctx context.Context, operation, key string, err error)
}

// RatesLogger registra la resolución de cotizaciones, históricos y conversiones
type RatesLogger interface {
	DomainLogger

	RateServed(ctx context.Context, currency string, rate float64, cached bool)
	RateFetchFailed(ctx context.Context, currency string, err error)
	ConversionServed(ctx context.Context, from, to string, amount, result float64)
	ValidationFailed(ctx context.Context, input, reason string)
}

type SecurityLogger interface {
	DomainLogger

	RateLimitExceeded(ctx context.Context, clientIP, endpoint string)
	Unauthorized(ctx context.Context, clientIP, reason string)
}
