package interfaces

import (
	"context"
	"time"

	"fx-rate-service/internal/domain/entities"
)

// FiatProvider obtiene cotizaciones de monedas fiat en BRL
type FiatProvider interface {
	// FetchRate retorna la última cotización publicada
	FetchRate(ctx context.Context, currency entities.Currency) (float64, error)
	// FetchHistory retorna la serie diaria entre start y end inclusive
	FetchHistory(ctx context.Context, currency entities.Currency, start, end time.Time) (entities.HistorySeries, error)
}

// CryptoProvider obtiene cotizaciones de BTC en BRL
type CryptoProvider interface {
	FetchSpot(ctx context.Context) (float64, error)
	FetchHistory(ctx context.Context, days int) (entities.HistorySeries, error)
}
