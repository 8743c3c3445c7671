package logging

import (
	"errors"
	"fmt"
)

// Fields son los campos estructurados de una entrada de log
type Fields map[string]interface{}

// LogLevel es el nivel de severidad de una entrada
type LogLevel string

const (
	LevelDebug LogLevel = "DEBUG"
	LevelInfo  LogLevel = "INFO"
	LevelWarn  LogLevel = "WARN"
	LevelError LogLevel = "ERROR"
)

// Claves comunes a todas las entradas
const (
	FieldTimestamp  = "timestamp"
	FieldMessage    = "message"
	FieldRequestID  = "request_id"
	FieldService    = "service"
	FieldVersion    = "version"
	FieldDomain     = "domain"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldDuration   = "duration_ms"
	FieldStatusCode = "status_code"
)

// HTTP entrante
const (
	FieldHTTPMethod     = "http_method"
	FieldHTTPPath       = "http_path"
	FieldHTTPStatusCode = "http_status_code"
	FieldHTTPUserAgent  = "http_user_agent"
	FieldHTTPRemoteIP   = "http_remote_ip"
	FieldHTTPQuery      = "http_query"
	FieldClientIP       = "client_ip"
)

// Proveedores (BACEN, CoinGecko)
const (
	FieldProvider         = "provider"
	FieldProviderEndpoint = "provider_endpoint"
	FieldProviderStatus   = "provider_status_code"
)

// Cache
const (
	FieldCacheOperation = "cache_operation"
	FieldCacheKey       = "cache_key"
	FieldCacheHit       = "cache_hit"
	FieldCacheTTL       = "cache_ttl_seconds"
)

// Cotizaciones y conversiones
const (
	FieldCurrency     = "currency"
	FieldRate         = "rate"
	FieldFromCurrency = "from_currency"
	FieldToCurrency   = "to_currency"
	FieldAmount       = "amount"
	FieldConverted    = "converted_amount"
	FieldDays         = "days"
	FieldCached       = "cached"
)

const (
	CacheOpGet = "GET"
	CacheOpSet = "SET"
)

// withError retorna una copia de fields con el detalle del error.
// Nunca modifica el mapa del llamador.
func withError(fields Fields, err error) Fields {
	out := make(Fields, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	if err != nil {
		out[FieldError] = err.Error()
		out[FieldErrorType] = errorType(err)
	}
	return out
}

// errorType busca el primer tipo concreto que no sea un wrapper de fmt o errors.New
func errorType(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch t := fmt.Sprintf("%T", e); t {
		case "*fmt.wrapError", "*errors.errorString":
			continue
		default:
			return t
		}
	}
	return fmt.Sprintf("%T", err)
}
