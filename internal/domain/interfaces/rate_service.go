package interfaces

import (
	"context"

	"fx-rate-service/internal/domain/entities"
)

// RateService define los casos de uso de cotizaciones
type RateService interface {
	// GetRate resuelve la cotización spot de una moneda, usando el cache cuando está fresco
	GetRate(ctx context.Context, currency string) (*entities.Rate, error)

	// GetHistory resuelve la serie histórica de los últimos days días
	GetHistory(ctx context.Context, base string, days int) (entities.HistorySeries, error)

	// Convert convierte amount de una moneda a otra pasando por BRL
	Convert(ctx context.Context, from, to string, amount float64) (*entities.Conversion, error)
}
