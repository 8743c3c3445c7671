package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the FX Rate Service
var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fx_rate_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPResponseSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fx_rate_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "path"},
	)

	// Cache Metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"}, // cache: spot/btc/history, result: hit/miss/stale/success/error
	)

	// External API Metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fx_rate_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"service", "endpoint"},
	)

	// Business Metrics
	RateRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_rate_requests_total",
			Help: "Total number of spot rate resolutions by currency",
		},
		[]string{"currency", "cache_result"}, // cache_result: hit/miss
	)

	HistoryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_history_requests_total",
			Help: "Total number of history resolutions by base currency",
		},
		[]string{"base", "cache_result"},
	)

	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_conversions_total",
			Help: "Total number of currency conversions",
		},
		[]string{"from", "to", "result"}, // result: success/error
	)

	CurrentRates = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fx_rate_current_rates",
			Help: "Last fetched rate of each currency in BRL",
		},
		[]string{"currency"},
	)

	CoalescedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_coalesced_fetches_total",
			Help: "Requests that shared an in-flight upstream fetch instead of issuing their own",
		},
		[]string{"kind"}, // kind: spot/history
	)

	// Rate Limiting Metrics
	RateLimitRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fx_rate_rate_limit_requests_total",
			Help: "Total number of requests processed by rate limiter",
		},
		[]string{"result"}, // result: allowed/blocked
	)

	// Application Metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fx_rate_application_info",
			Help: "Application information",
		},
		[]string{"version", "cache_backend", "spot_freshness"},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

	if responseSize > 0 {
		HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordCacheOperation records cache operation metrics
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// RecordExternalAPICall records external API call metrics
func RecordExternalAPICall(service, endpoint string, statusCode int, duration float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(duration)
}

func cacheResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// RecordRateRequest records spot rate resolution metrics
func RecordRateRequest(currency string, cacheHit bool) {
	RateRequestsTotal.WithLabelValues(currency, cacheResult(cacheHit)).Inc()
}

// RecordHistoryRequest records history resolution metrics
func RecordHistoryRequest(base string, cacheHit bool) {
	HistoryRequestsTotal.WithLabelValues(base, cacheResult(cacheHit)).Inc()
}

// RecordConversion records a conversion outcome
func RecordConversion(from, to string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	ConversionsTotal.WithLabelValues(from, to, result).Inc()
}

// UpdateCurrentRate updates current rate gauge
func UpdateCurrentRate(currency string, rate float64) {
	CurrentRates.WithLabelValues(currency).Set(rate)
}

// RecordCoalescedFetch cuenta una resolución que reutilizó un fetch en curso
func RecordCoalescedFetch(kind string) {
	CoalescedFetchesTotal.WithLabelValues(kind).Inc()
}

// RecordRateLimitResult records rate limiting results
func RecordRateLimitResult(allowed bool) {
	result := "blocked"
	if allowed {
		result = "allowed"
	}
	RateLimitRequestsTotal.WithLabelValues(result).Inc()
}

// SetApplicationInfo sets application information
func SetApplicationInfo(version, cacheBackend, spotFreshness string) {
	ApplicationInfo.WithLabelValues(version, cacheBackend, spotFreshness).Set(1)
}
