package logging

import (
	"context"
)

// domainLogger agrega el campo "domain" a cada entrada del Logger base
type domainLogger struct {
	Logger
	domain string
}

func newDomainLogger(base Logger, domain string) domainLogger {
	return domainLogger{Logger: base, domain: domain}
}

func (d domainLogger) Domain() string {
	return d.domain
}

func (d domainLogger) emit(ctx context.Context, level LogLevel, message string, fields Fields) {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[FieldDomain] = d.domain

	switch level {
	case LevelDebug:
		d.Logger.Debug(ctx, message, out)
	case LevelWarn:
		d.Logger.Warn(ctx, message, out)
	case LevelError:
		d.Logger.Error(ctx, message, out)
	default:
		d.Logger.Info(ctx, message, out)
	}
}

func (d domainLogger) Debug(ctx context.Context, message string, fields Fields) {
	d.emit(ctx, LevelDebug, message, fields)
}

func (d domainLogger) Info(ctx context.Context, message string, fields Fields) {
	d.emit(ctx, LevelInfo, message, fields)
}

func (d domainLogger) Warn(ctx context.Context, message string, fields Fields) {
	d.emit(ctx, LevelWarn, message, fields)
}

func (d domainLogger) Error(ctx context.Context, message string, fields Fields) {
	d.emit(ctx, LevelError, message, fields)
}

// levelForStatus: 5xx error, 4xx warn, resto info
func levelForStatus(statusCode int) LogLevel {
	switch {
	case statusCode >= 500:
		return LevelError
	case statusCode >= 400:
		return LevelWarn
	default:
		return LevelInfo
	}
}

type httpLogger struct{ domainLogger }

// NewHTTPLogger crea el logger de requests entrantes
func NewHTTPLogger(base Logger) HTTPLogger {
	return httpLogger{newDomainLogger(base, "http")}
}

func (l httpLogger) RequestReceived(ctx context.Context, method, path, userAgent, remoteIP string) {
	fields := Fields{
		FieldHTTPMethod: method,
		FieldHTTPPath:   path,
	}
	if userAgent != "" {
		fields[FieldHTTPUserAgent] = userAgent
	}
	if remoteIP != "" {
		fields[FieldHTTPRemoteIP] = remoteIP
	}
	l.Debug(ctx, "HTTP request received", fields)
}

func (l httpLogger) RequestCompleted(ctx context.Context, method, path string, statusCode int, duration float64) {
	l.emit(ctx, levelForStatus(statusCode), "HTTP request completed", Fields{
		FieldHTTPMethod:     method,
		FieldHTTPPath:       path,
		FieldHTTPStatusCode: statusCode,
		FieldDuration:       duration,
	})
}

func (l httpLogger) RequestFailed(ctx context.Context, method, path string, statusCode int, err error, duration float64) {
	l.emit(ctx, levelForStatus(statusCode), "HTTP request failed", withError(Fields{
		FieldHTTPMethod:     method,
		FieldHTTPPath:       path,
		FieldHTTPStatusCode: statusCode,
		FieldDuration:       duration,
	}, err))
}

type providerLogger struct{ domainLogger }

// NewExternalAPILogger crea el logger de llamadas a BACEN y CoinGecko
func NewExternalAPILogger(base Logger) ExternalAPILogger {
	return providerLogger{newDomainLogger(base, "external_api")}
}

func (l providerLogger) RequestStarted(ctx context.Context, provider, endpoint, method string) {
	l.Debug(ctx, "Provider request started", Fields{
		FieldProvider:         provider,
		FieldProviderEndpoint: endpoint,
		FieldHTTPMethod:       method,
	})
}

func (l providerLogger) RequestCompleted(ctx context.Context, provider, endpoint string, statusCode int, duration float64) {
	l.emit(ctx, levelForStatus(statusCode), "Provider request completed", Fields{
		FieldProvider:         provider,
		FieldProviderEndpoint: endpoint,
		FieldProviderStatus:   statusCode,
		FieldDuration:         duration,
	})
}

func (l providerLogger) RequestFailed(ctx context.Context, provider, endpoint string, statusCode int, err error, duration float64) {
	l.Error(ctx, "Provider request failed", withError(Fields{
		FieldProvider:         provider,
		FieldProviderEndpoint: endpoint,
		FieldProviderStatus:   statusCode,
		FieldDuration:         duration,
	}, err))
}

type cacheLogger struct{ domainLogger }

// NewCacheLogger crea el logger del RateStore
func NewCacheLogger(base Logger) CacheLogger {
	return cacheLogger{newDomainLogger(base, "cache")}
}

func (l cacheLogger) Hit(ctx context.Context, key, operation string) {
	l.Debug(ctx, "Cache hit", Fields{FieldCacheKey: key, FieldCacheOperation: operation, FieldCacheHit: true})
}

func (l cacheLogger) Miss(ctx context.Context, key, operation string) {
	l.Debug(ctx, "Cache miss", Fields{FieldCacheKey: key, FieldCacheOperation: operation, FieldCacheHit: false})
}

func (l cacheLogger) Set(ctx context.Context, key string, ttl float64) {
	l.Debug(ctx, "Cache set", Fields{FieldCacheKey: key, FieldCacheOperation: CacheOpSet, FieldCacheTTL: ttl})
}

// CacheError va en warn: un backend caído degrada a miss, no corta la request
func (l cacheLogger) CacheError(ctx context.Context, operation, key string, err error) {
	l.Warn(ctx, "Cache operation failed", withError(Fields{
		FieldCacheKey:       key,
		FieldCacheOperation: operation,
	}, err))
}

type ratesLogger struct{ domainLogger }

// NewRatesLogger crea el logger del servicio de cotizaciones
func NewRatesLogger(base Logger) RatesLogger {
	return ratesLogger{newDomainLogger(base, "rates")}
}

func (l ratesLogger) RateServed(ctx context.Context, currency string, rate float64, cached bool) {
	l.Info(ctx, "Rate served", Fields{
		FieldCurrency: currency,
		FieldRate:     rate,
		FieldCached:   cached,
	})
}

func (l ratesLogger) RateFetchFailed(ctx context.Context, currency string, err error) {
	l.Error(ctx, "Rate fetch failed", withError(Fields{FieldCurrency: currency}, err))
}

func (l ratesLogger) ConversionServed(ctx context.Context, from, to string, amount, result float64) {
	l.Info(ctx, "Conversion served", Fields{
		FieldFromCurrency: from,
		FieldToCurrency:   to,
		FieldAmount:       amount,
		FieldConverted:    result,
	})
}

func (l ratesLogger) ValidationFailed(ctx context.Context, input, reason string) {
	l.Warn(ctx, "Input validation failed", Fields{"input": input, "reason": reason})
}

type securityLogger struct{ domainLogger }

// NewSecurityLogger crea el logger de rate limit y autenticación
func NewSecurityLogger(base Logger) SecurityLogger {
	return securityLogger{newDomainLogger(base, "security")}
}

func (l securityLogger) RateLimitExceeded(ctx context.Context, clientIP, endpoint string) {
	l.Warn(ctx, "Rate limit exceeded", Fields{FieldClientIP: clientIP, FieldHTTPPath: endpoint})
}

func (l securityLogger) Unauthorized(ctx context.Context, clientIP, reason string) {
	l.Warn(ctx, "Unauthorized request", Fields{FieldClientIP: clientIP, "reason": reason})
}
