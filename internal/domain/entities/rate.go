package entities

import (
	"fmt"
	"time"
)

// Rate es la cotización spot de una moneda expresada en BRL
type Rate struct {
	Currency  Currency  `json:"currency"`
	Value     float64   `json:"value"`
	FetchedAt time.Time `json:"fetched_at"`
	Cached    bool      `json:"cached"`
}

// NewRate crea una cotización recién obtenida
func NewRate(currency Currency, value float64, fetchedAt time.Time) *Rate {
	return &Rate{
		Currency:  currency,
		Value:     value,
		FetchedAt: fetchedAt,
	}
}

// HistoryPoint es el valor de un día expresado en la moneda local
type HistoryPoint struct {
	BRL float64 `json:"BRL"`
}

// HistorySeries indexa valores por fecha "YYYY-MM-DD"
type HistorySeries map[string]HistoryPoint

// HistoryKey identifica una serie histórica por moneda y rango de días
func HistoryKey(base Currency, days int) string {
	return fmt.Sprintf("%s_%d", base, days)
}

// Conversion es el resultado de convertir un monto entre dos monedas
type Conversion struct {
	From     Currency `json:"from_currency"`
	To       Currency `json:"to_currency"`
	Amount   float64  `json:"amount"`
	FromRate float64  `json:"from_rate"`
	ToRate   float64  `json:"to_rate"`
	Result   float64  `json:"converted_amount"`
}
