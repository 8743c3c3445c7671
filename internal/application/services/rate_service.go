package services

import (
	"context"
	"fmt"
	"math"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/logging"
	"fx-rate-service/internal/infrastructure/metrics"
	"fx-rate-service/pkg/utils"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Prefijos de las claves de single-flight
const (
	flightSpot    = "spot"
	flightHistory = "history"
)

// rateService implementa interfaces.RateService sobre un RateCache y dos proveedores
type rateService struct {
	fiat    interfaces.FiatProvider
	crypto  interfaces.CryptoProvider
	cache   interfaces.RateCache
	clock   utils.Clock
	logger  logging.RatesLogger
	flights singleflight.Group
}

// NewRateService crea el servicio de cotizaciones. Todo el estado de cache vive
// en el RateCache recibido.
func NewRateService(fiat interfaces.FiatProvider, crypto interfaces.CryptoProvider, cache interfaces.RateCache, clock utils.Clock) interfaces.RateService {
	if clock == nil {
		clock = utils.SystemClock()
	}
	return &rateService{
		fiat:   fiat,
		crypto: crypto,
		cache:  cache,
		clock:  clock,
		logger: logging.Rates(),
	}
}

// GetRate retorna la cotización spot en BRL de una moneda soportada
func (s *rateService) GetRate(ctx context.Context, code string) (*entities.Rate, error) {
	currency := entities.NormalizeCurrency(code)
	if !currency.IsQuotable() {
		s.logger.ValidationFailed(ctx, code, "unsupported currency")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}

	value, cached, err := s.resolveSpot(ctx, currency)
	metrics.RecordRateRequest(currency.String(), cached)
	if err != nil {
		s.logger.RateFetchFailed(ctx, currency.String(), err)
		return nil, err
	}

	metrics.UpdateCurrentRate(currency.String(), value)
	s.logger.RateServed(ctx, currency.String(), value, cached)

	rate := entities.NewRate(currency, value, s.clock.Now())
	rate.Cached = cached
	return rate, nil
}

// resolveSpot consulta el cache spot y, ante un miss, coalesce el fetch por moneda
func (s *rateService) resolveSpot(ctx context.Context, currency entities.Currency) (float64, bool, error) {
	if value, ok := s.cache.GetSpot(ctx, currency); ok {
		return value, true, nil
	}

	key := fmt.Sprintf("%s:%s", flightSpot, currency)
	value, err := coalesce(ctx, &s.flights, flightSpot, key, func(ctx context.Context) (float64, error) {
		// otro flight pudo haber escrito mientras esperábamos
		if value, ok := s.cache.GetSpot(ctx, currency); ok {
			return value, nil
		}

		value, err := s.fetchSpot(ctx, currency)
		if err != nil {
			return 0, err
		}

		if err := s.cache.SetSpot(ctx, currency, value); err != nil {
			logging.WarnWithError(ctx, "Failed to store spot rate", err, logging.Fields{
				logging.FieldCurrency: currency.String(),
			})
		}
		return value, nil
	})
	if err != nil {
		return 0, false, err
	}
	return value, false, nil
}

func (s *rateService) fetchSpot(ctx context.Context, currency entities.Currency) (float64, error) {
	if !currency.IsCrypto() {
		value, err := s.fiat.FetchRate(ctx, currency)
		if err != nil {
			return 0, fmt.Errorf("fetch %s rate: %w", currency, err)
		}
		return value, nil
	}

	if value, ok := s.cache.GetBTC(ctx); ok {
		return value, nil
	}

	value, err := s.crypto.FetchSpot(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch %s rate: %w", currency, err)
	}
	if err := s.cache.SetBTC(ctx, value); err != nil {
		logging.WarnWithError(ctx, "Failed to store BTC rate", err, nil)
	}
	return value, nil
}

// GetHistory retorna la serie diaria de base para los últimos days días
func (s *rateService) GetHistory(ctx context.Context, base string, days int) (entities.HistorySeries, error) {
	currency := entities.NormalizeCurrency(base)
	if !currency.IsQuotable() {
		s.logger.ValidationFailed(ctx, base, "unsupported currency")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, base)
	}
	if days < MinHistoryDays || days > MaxHistoryDays {
		s.logger.ValidationFailed(ctx, fmt.Sprintf("%d", days), "days out of range")
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDays, days)
	}

	key := entities.HistoryKey(currency, days)
	if series, ok := s.cache.GetHistory(ctx, key); ok {
		metrics.RecordHistoryRequest(currency.String(), true)
		return series, nil
	}
	metrics.RecordHistoryRequest(currency.String(), false)

	flightKey := fmt.Sprintf("%s:%s", flightHistory, key)
	series, err := coalesce(ctx, &s.flights, flightHistory, flightKey, func(ctx context.Context) (entities.HistorySeries, error) {
		if series, ok := s.cache.GetHistory(ctx, key); ok {
			return series, nil
		}

		series, err := s.fetchHistory(ctx, currency, days)
		if err != nil {
			return nil, err
		}

		if err := s.cache.SetHistory(ctx, key, series); err != nil {
			logging.WarnWithError(ctx, "Failed to store history series", err, logging.Fields{
				logging.FieldCurrency: currency.String(),
				logging.FieldDays:     days,
			})
		}
		return series, nil
	})
	if err != nil {
		s.logger.RateFetchFailed(ctx, currency.String(), err)
		return nil, err
	}

	logging.Debug(ctx, "History served", logging.Fields{
		logging.FieldCurrency: currency.String(),
		logging.FieldDays:     days,
		"points":              len(series),
	})
	return series, nil
}

func (s *rateService) fetchHistory(ctx context.Context, currency entities.Currency, days int) (entities.HistorySeries, error) {
	var (
		series entities.HistorySeries
		err    error
	)
	if currency.IsCrypto() {
		series, err = s.crypto.FetchHistory(ctx, days)
	} else {
		now := s.clock.Now()
		series, err = s.fiat.FetchHistory(ctx, currency, utils.DaysAgo(now, days), now)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s history: %w", currency, err)
	}
	return series, nil
}

// Convert convierte amount de from a to pasando por BRL
func (s *rateService) Convert(ctx context.Context, from, to string, amount float64) (conversion *entities.Conversion, err error) {
	fromCurrency := entities.NormalizeCurrency(from)
	toCurrency := entities.NormalizeCurrency(to)

	defer func() {
		metrics.RecordConversion(metricLabel(fromCurrency), metricLabel(toCurrency), err)
	}()

	for _, c := range []struct {
		raw      string
		currency entities.Currency
	}{{from, fromCurrency}, {to, toCurrency}} {
		if !c.currency.IsConvertible() {
			s.logger.ValidationFailed(ctx, c.raw, "unsupported currency")
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c.raw)
		}
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		s.logger.ValidationFailed(ctx, fmt.Sprintf("%v", amount), "invalid amount")
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}

	var fromRate, toRate float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		fromRate, err = s.rateInBase(gctx, fromCurrency)
		return err
	})
	g.Go(func() (err error) {
		toRate, err = s.rateInBase(gctx, toCurrency)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !usableRate(fromRate) {
		return nil, fmt.Errorf("%w: %s rate is %v", ErrRateNotFound, fromCurrency, fromRate)
	}
	if !usableRate(toRate) {
		return nil, fmt.Errorf("%w: %s rate is %v", ErrRateNotFound, toCurrency, toRate)
	}

	result := amount * fromRate / toRate
	s.logger.ConversionServed(ctx, fromCurrency.String(), toCurrency.String(), amount, result)

	return &entities.Conversion{
		From:     fromCurrency,
		To:       toCurrency,
		Amount:   amount,
		FromRate: fromRate,
		ToRate:   toRate,
		Result:   result,
	}, nil
}

// rateInBase retorna cuántos BRL vale una unidad de currency
func (s *rateService) rateInBase(ctx context.Context, currency entities.Currency) (float64, error) {
	if currency == entities.BRL {
		return 1.0, nil
	}
	rate, err := s.GetRate(ctx, currency.String())
	if err != nil {
		return 0, err
	}
	return rate.Value, nil
}

func usableRate(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// metricLabel evita etiquetas arbitrarias para códigos no soportados
func metricLabel(c entities.Currency) string {
	if !c.IsConvertible() {
		return "unsupported"
	}
	return c.String()
}
