package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/logging"
	"fx-rate-service/internal/infrastructure/metrics"
	"fx-rate-service/pkg/utils"
)

// Nombres de los caches lógicos, usados en claves, logs y métricas
const (
	KindSpot    = "spot"
	KindBTC     = "btc"
	KindHistory = "history"
)

const sharedSpotStampKey = "spot:_stamp"

// entry es el sobre JSON que se guarda en el backend
type entry[T any] struct {
	Value    T         `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// StoreOptions configura la política de frescura del RateStore
type StoreOptions struct {
	TTL time.Duration
	// SharedSpotStamp usa un único timestamp para todo el cache spot
	SharedSpotStamp bool
	Clock           utils.Clock
}

// RateStore guarda cotizaciones spot, la cotización BTC y series históricas
// sobre cualquier interfaces.Cache, aplicando una sola regla de frescura:
// un valor es válido si now - stamp < TTL. Las entradas nunca se eliminan.
type RateStore struct {
	backend    interfaces.Cache
	clock      utils.Clock
	ttl        time.Duration
	sharedSpot bool
	logger     logging.CacheLogger

	// serializa escritura de entrada + timestamp compartido
	spotMu sync.Mutex
}

// NewRateStore crea un store sobre el backend dado
func NewRateStore(backend interfaces.Cache, opts StoreOptions) *RateStore {
	clock := opts.Clock
	if clock == nil {
		clock = utils.SystemClock()
	}
	return &RateStore{
		backend:    backend,
		clock:      clock,
		ttl:        opts.TTL,
		sharedSpot: opts.SharedSpotStamp,
		logger:     logging.Cache(),
	}
}

// TTL retorna la vigencia configurada
func (s *RateStore) TTL() time.Duration {
	return s.ttl
}

// Backend retorna el backend subyacente (para health checks)
func (s *RateStore) Backend() interfaces.Cache {
	return s.backend
}

func spotKey(currency entities.Currency) string {
	return fmt.Sprintf("%s:%s", KindSpot, currency)
}

func historyKey(key string) string {
	return fmt.Sprintf("%s:%s", KindHistory, key)
}

// GetSpot retorna la cotización spot si está vigente
func (s *RateStore) GetSpot(ctx context.Context, currency entities.Currency) (float64, bool) {
	key := spotKey(currency)
	e, ok := readEntry[float64](ctx, s, KindSpot, key)
	if !ok {
		return 0, false
	}

	stamp := e.StoredAt
	if s.sharedSpot {
		shared, ok := readEntry[bool](ctx, s, KindSpot, sharedSpotStampKey)
		if !ok {
			return 0, false
		}
		stamp = shared.StoredAt
	}

	return e.Value, s.checkFresh(ctx, KindSpot, key, stamp)
}

// SetSpot guarda la cotización spot con el timestamp actual
func (s *RateStore) SetSpot(ctx context.Context, currency entities.Currency, value float64) error {
	now := s.clock.Now()
	key := spotKey(currency)

	s.spotMu.Lock()
	defer s.spotMu.Unlock()

	if err := writeEntry(ctx, s, KindSpot, key, entry[float64]{Value: value, StoredAt: now}); err != nil {
		return err
	}
	if s.sharedSpot {
		return writeEntry(ctx, s, KindSpot, sharedSpotStampKey, entry[bool]{Value: true, StoredAt: now})
	}
	return nil
}

// GetBTC retorna la cotización BTC si está vigente
func (s *RateStore) GetBTC(ctx context.Context) (float64, bool) {
	e, ok := readEntry[float64](ctx, s, KindBTC, KindBTC)
	if !ok {
		return 0, false
	}
	return e.Value, s.checkFresh(ctx, KindBTC, KindBTC, e.StoredAt)
}

// SetBTC guarda la cotización BTC con su propio timestamp
func (s *RateStore) SetBTC(ctx context.Context, value float64) error {
	return writeEntry(ctx, s, KindBTC, KindBTC, entry[float64]{Value: value, StoredAt: s.clock.Now()})
}

// GetHistory retorna la serie de la clave BASE_DAYS si está vigente
func (s *RateStore) GetHistory(ctx context.Context, key string) (entities.HistorySeries, bool) {
	k := historyKey(key)
	e, ok := readEntry[entities.HistorySeries](ctx, s, KindHistory, k)
	if !ok {
		return nil, false
	}
	if !s.checkFresh(ctx, KindHistory, k, e.StoredAt) {
		return nil, false
	}
	return e.Value, true
}

// SetHistory guarda la serie con su propio timestamp
func (s *RateStore) SetHistory(ctx context.Context, key string, series entities.HistorySeries) error {
	return writeEntry(ctx, s, KindHistory, historyKey(key), entry[entities.HistorySeries]{Value: series, StoredAt: s.clock.Now()})
}

func (s *RateStore) checkFresh(ctx context.Context, kind, key string, stamp time.Time) bool {
	if utils.IsFresh(s.clock.Now(), stamp, s.ttl) {
		metrics.RecordCacheOperation(kind, "get", "hit")
		s.logger.Hit(ctx, key, logging.CacheOpGet)
		return true
	}
	metrics.RecordCacheOperation(kind, "get", "stale")
	s.logger.Miss(ctx, key, logging.CacheOpGet)
	return false
}

// readEntry lee y decodifica una entrada; errores del backend cuentan como miss
func readEntry[T any](ctx context.Context, s *RateStore, kind, key string) (entry[T], bool) {
	var e entry[T]

	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if IsMiss(err) {
			metrics.RecordCacheOperation(kind, "get", "miss")
			s.logger.Miss(ctx, key, logging.CacheOpGet)
		} else {
			metrics.RecordCacheOperation(kind, "get", "error")
			s.logger.CacheError(ctx, logging.CacheOpGet, key, err)
		}
		return e, false
	}

	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		metrics.RecordCacheOperation(kind, "get", "error")
		s.logger.CacheError(ctx, logging.CacheOpGet, key, fmt.Errorf("decode entry: %w", err))
		return e, false
	}
	return e, true
}

func writeEntry[T any](ctx context.Context, s *RateStore, kind, key string, e entry[T]) error {
	payload, err := json.Marshal(e)
	if err != nil {
		metrics.RecordCacheOperation(kind, "set", "error")
		return fmt.Errorf("encode %s entry: %w", kind, err)
	}

	// Sin TTL de backend: la vigencia se evalúa al leer
	if err := s.backend.Set(ctx, key, string(payload), 0); err != nil {
		metrics.RecordCacheOperation(kind, "set", "error")
		s.logger.CacheError(ctx, logging.CacheOpSet, key, err)
		return fmt.Errorf("store %s entry: %w", kind, err)
	}

	metrics.RecordCacheOperation(kind, "set", "success")
	s.logger.Set(ctx, key, s.ttl.Seconds())
	return nil
}
