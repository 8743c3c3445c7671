package interfaces

import (
	"context"
	"time"

	"fx-rate-service/internal/domain/entities"
)

// Cache es un almacenamiento clave/valor de strings; ttl <= 0 significa sin expiración
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Pinger lo implementan los backends que pueden verificar su conexión
type Pinger interface {
	Ping(ctx context.Context) error
}

// RateCache guarda cotizaciones con su política de frescura; un ok=false
// significa ausente o vencido
type RateCache interface {
	GetSpot(ctx context.Context, currency entities.Currency) (float64, bool)
	SetSpot(ctx context.Context, currency entities.Currency, value float64) error

	GetBTC(ctx context.Context) (float64, bool)
	SetBTC(ctx context.Context, value float64) error

	GetHistory(ctx context.Context, key string) (entities.HistorySeries, bool)
	SetHistory(ctx context.Context, key string, series entities.HistorySeries) error
}
