package dto

import (
	"time"
)

// Códigos de error expuestos en ErrorResponse.Code
const (
	CodeInvalidParameter    = "INVALID_PARAMETER"
	CodeUnsupportedCurrency = "UNSUPPORTED_CURRENCY"
	CodeInvalidDays         = "INVALID_DAYS"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeUpstreamError       = "UPSTREAM_ERROR"
	CodeRateNotFound        = "RATE_NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// StatusResponse es la respuesta del endpoint raíz
// @Description Service banner
type StatusResponse struct {
	Status string `json:"status" example:"Bacen FX API is running"`
}

// RateResponse mapea el código de moneda a su cotización en BRL, ej: {"USD": 5.23}
type RateResponse map[string]float64

// HistoryPoint es el valor de un día de la serie
// @Description Daily value in BRL
type HistoryPoint struct {
	BRL float64 `json:"BRL" example:"4.9731"`
}

// HistoryResponse indexa la serie por fecha YYYY-MM-DD; encoding/json ordena las claves
type HistoryResponse map[string]HistoryPoint

// ConvertResponse es la respuesta de /convert
// @Description Conversion result
type ConvertResponse struct {
	ConvertedAmount float64 `json:"converted_amount" example:"90.9090"`
}

// ErrorResponse es el cuerpo estándar de error
// @Description Standard error response
type ErrorResponse struct {
	Detail string `json:"detail" example:"unsupported currency: XXX"`
	Code   string `json:"code,omitempty" example:"UNSUPPORTED_CURRENCY"`
}

// HealthResponse represents the health check response with service status
// @Description Health check response with service status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy" enums:"healthy,unhealthy"`
	Timestamp time.Time         `json:"timestamp" example:"2024-03-10T10:30:00Z"`
	Services  map[string]string `json:"services,omitempty" example:"cache:healthy"`
}

// NewErrorResponse crea una respuesta de error
func NewErrorResponse(detail, code string) *ErrorResponse {
	return &ErrorResponse{Detail: detail, Code: code}
}

// NewHealthResponse creates a health check response
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}
}
