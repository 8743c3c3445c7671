package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultHistoryBase y DefaultHistoryDays se usan cuando el cliente omite el parámetro
	DefaultHistoryBase = "USD"
	DefaultHistoryDays = 30

	currencyCodeLength = 3
)

var (
	ErrMissingParameter    = errors.New("missing required parameter")
	ErrInvalidCurrencyCode = errors.New("currency code must have exactly 3 letters")
	ErrInvalidNumber       = errors.New("invalid numeric parameter")
)

// ParseCurrencyCode valida el formato de un código de moneda (3 letras)
func ParseCurrencyCode(param, raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, param)
	}
	if len(code) != currencyCodeLength {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidCurrencyCode, param, raw)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return "", fmt.Errorf("%w: %s=%q", ErrInvalidCurrencyCode, param, raw)
		}
	}
	return strings.ToUpper(code), nil
}

// HistoryRequest representa la request de /history
type HistoryRequest struct {
	Base string `json:"base"`
	Days int    `json:"days"`
}

// NewHistoryRequest crea la request desde query parameters, aplicando defaults
// El rango de días lo valida el servicio
func NewHistoryRequest(baseParam, daysParam string) (*HistoryRequest, error) {
	req := &HistoryRequest{Base: DefaultHistoryBase, Days: DefaultHistoryDays}

	if strings.TrimSpace(baseParam) != "" {
		base, err := ParseCurrencyCode("base", baseParam)
		if err != nil {
			return nil, err
		}
		req.Base = base
	}

	if strings.TrimSpace(daysParam) != "" {
		days, err := strconv.Atoi(strings.TrimSpace(daysParam))
		if err != nil {
			return nil, fmt.Errorf("%w: days=%q", ErrInvalidNumber, daysParam)
		}
		req.Days = days
	}

	return req, nil
}

// ConvertRequest representa la request de /convert
type ConvertRequest struct {
	From   string  `json:"from_currency"`
	To     string  `json:"to_currency"`
	Amount float64 `json:"amount"`
}

// NewConvertRequest crea la request desde query parameters; los tres son obligatorios
func NewConvertRequest(fromParam, toParam, amountParam string) (*ConvertRequest, error) {
	from, err := ParseCurrencyCode("from_currency", fromParam)
	if err != nil {
		return nil, err
	}

	to, err := ParseCurrencyCode("to_currency", toParam)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(amountParam)
	if err != nil {
		return nil, err
	}

	return &ConvertRequest{From: from, To: to, Amount: amount}, nil
}

// parseAmount acepta decimales con punto; rechaza NaN, Inf y notación no numérica
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: amount", ErrMissingParameter)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: amount=%q", ErrInvalidNumber, raw)
	}

	amount, _ := d.Float64()
	return amount, nil
}

// IsRequestError indica si el error proviene del parseo de parámetros
func IsRequestError(err error) bool {
	return errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrInvalidCurrencyCode) ||
		errors.Is(err, ErrInvalidNumber)
}
