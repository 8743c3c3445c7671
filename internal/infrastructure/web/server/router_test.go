package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/application/services"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/exchange/bacen"
	"fx-rate-service/internal/infrastructure/exchange/coingecko"
	"fx-rate-service/internal/infrastructure/repositories/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamCounters struct {
	bacen     atomic.Int32
	coingecko atomic.Int32
}

// newFakeUpstreams levanta servidores que imitan BACEN SGS y CoinGecko
func newFakeUpstreams(t *testing.T) (*httptest.Server, *httptest.Server, *upstreamCounters) {
	t.Helper()
	counters := &upstreamCounters{}

	bacenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counters.bacen.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(r.URL.Path, "bcdata.sgs.1/"):
			_, _ = w.Write([]byte(`[{"data":"07/03/2024","valor":"4,9700"},{"data":"08/03/2024","valor":"5,0000"}]`))
		case strings.Contains(r.URL.Path, "bcdata.sgs.21619/"):
			_, _ = w.Write([]byte(`[{"data":"08/03/2024","valor":"5,5000"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	}))
	t.Cleanup(bacenServer.Close)

	coingeckoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counters.coingecko.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/simple/price":
			_, _ = w.Write([]byte(`{"bitcoin":{"brl":350000}}`))
		case "/coins/bitcoin/market_chart":
			_, _ = w.Write([]byte(`{"prices":[[1709856000000,340000.5],[1709942400000,345000]]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(coingeckoServer.Close)

	return bacenServer, coingeckoServer, counters
}

func newTestRouter(t *testing.T) (http.Handler, *upstreamCounters) {
	t.Helper()
	bacenServer, coingeckoServer, counters := newFakeUpstreams(t)

	cfg := config.GetDefaultConfig()
	cfg.Upstreams.Bacen.BaseURL = bacenServer.URL
	cfg.Upstreams.CoinGecko.BaseURL = coingeckoServer.URL
	cfg.RateLimit.Enabled = false

	backend := cache.NewMemoryCache()
	store := cache.NewRateStore(backend, cache.StoreOptions{TTL: cfg.Cache.TTL})
	rateService := services.NewRateService(
		bacen.NewClient(cfg.Upstreams.Bacen),
		coingecko.NewClient(cfg.Upstreams.CoinGecko),
		store,
		nil,
	)

	return NewRouter(RouterDeps{
		RateService: rateService,
		CachePinger: backend,
		RateLimit:   cfg.RateLimit,
		Auth:        cfg.Auth,
	}), counters
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouter_Root(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"Bacen FX API is running"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateIsCachedWithinTTL(t *testing.T) {
	router, counters := newTestRouter(t)

	first := get(t, router, "/rate/usd")
	second := get(t, router, "/rate/USD")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"USD":5}`, first.Body.String())
	assert.JSONEq(t, `{"USD":5}`, second.Body.String())
	assert.Equal(t, int32(1), counters.bacen.Load())
}

func TestRouter_BTCRate(t *testing.T) {
	router, counters := newTestRouter(t)

	rec := get(t, router, "/rate/BTC")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"BTC":350000}`, rec.Body.String())
	assert.Equal(t, int32(1), counters.coingecko.Load())
	assert.Equal(t, int32(0), counters.bacen.Load())
}

func TestRouter_UpstreamStatusIsPropagated(t *testing.T) {
	router, _ := newTestRouter(t)

	// GBP no está en el servidor falso: responde 404
	rec := get(t, router, "/rate/GBP")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dto.CodeUpstreamError, body.Code)
	assert.NotEmpty(t, body.Detail)
}

func TestRouter_ValidationErrors(t *testing.T) {
	router, counters := newTestRouter(t)

	for _, target := range []string{
		"/rate/XXX",
		"/history?base=USD&days=400",
		"/history?base=XXX&days=10",
		"/history?days=abc",
		"/convert?from_currency=USD&to_currency=EUR&amount=0",
		"/convert?from_currency=USD&to_currency=EUR",
		"/convert?from_currency=US&to_currency=EUR&amount=1",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(t, router, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Equal(t, int32(0), counters.bacen.Load())
	assert.Equal(t, int32(0), counters.coingecko.Load())
}

func TestRouter_History(t *testing.T) {
	router, counters := newTestRouter(t)

	rec := get(t, router, "/history?base=usd&days=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"2024-03-07":{"BRL":4.97},"2024-03-08":{"BRL":5}}`, rec.Body.String())

	btc := get(t, router, "/history?base=BTC&days=2")
	assert.Equal(t, http.StatusOK, btc.Code)
	assert.JSONEq(t, `{"2024-03-08":{"BRL":340000.5},"2024-03-09":{"BRL":345000}}`, btc.Body.String())

	get(t, router, "/history?base=usd&days=5")
	assert.Equal(t, int32(1), counters.bacen.Load())
	assert.Equal(t, int32(1), counters.coingecko.Load())
}

func TestRouter_Convert(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		query string
		want  float64
	}{
		{query: "from_currency=USD&to_currency=EUR&amount=110", want: 110 * 5.0 / 5.5},
		{query: "from_currency=BRL&to_currency=BRL&amount=100", want: 100},
		{query: "from_currency=BTC&to_currency=BRL&amount=0.5", want: 175000},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, router, "/convert?"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var body dto.ConvertResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.InDelta(t, tt.want, body.ConvertedAmount, 1e-9)
		})
	}
}

func TestRouter_HealthAndReady(t *testing.T) {
	router, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/ready").Code)
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)
	get(t, router, "/rate/USD")

	rec := get(t, router, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fx_rate_http_requests_total")
}

func TestRouter_AuthProtectsRateEndpoints(t *testing.T) {
	bacenServer, coingeckoServer, _ := newFakeUpstreams(t)
	cfg := config.GetDefaultConfig()
	cfg.Upstreams.Bacen.BaseURL = bacenServer.URL
	cfg.Upstreams.CoinGecko.BaseURL = coingeckoServer.URL
	cfg.Auth.Enabled = true
	cfg.Auth.APIKey = "secret"

	store := cache.NewRateStore(cache.NewMemoryCache(), cache.StoreOptions{TTL: cfg.Cache.TTL})
	router := NewRouter(RouterDeps{
		RateService: services.NewRateService(bacen.NewClient(cfg.Upstreams.Bacen), coingecko.NewClient(cfg.Upstreams.CoinGecko), store, nil),
		RateLimit:   cfg.RateLimit,
		Auth:        cfg.Auth,
	})

	assert.Equal(t, http.StatusUnauthorized, get(t, router, "/rate/USD").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)

	req := httptest.NewRequest(http.MethodGet, "/rate/USD", nil)
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
