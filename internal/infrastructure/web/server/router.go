package server

import (
	"net/http"

	_ "fx-rate-service/internal/docs"
	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/metrics"
	"fx-rate-service/internal/infrastructure/ratelimit"
	"fx-rate-service/internal/infrastructure/web/handlers"
	"fx-rate-service/internal/infrastructure/web/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps agrupa lo necesario para construir el router
type RouterDeps struct {
	RateService interfaces.RateService
	// CachePinger se usa en /ready; puede ser nil
	CachePinger interfaces.Pinger
	RateLimit   config.RateLimitConfig
	Auth        config.AuthConfig
}

// NewRouter registra las rutas y aplica la cadena de middleware:
// tracing, logging, métricas, CORS, rate limit y auth
func NewRouter(deps RouterDeps) http.Handler {
	rateHandler := handlers.NewRateHandler(deps.RateService)
	healthHandler := handlers.NewHealthHandler(deps.CachePinger)

	router := mux.NewRouter()

	router.HandleFunc("/", rateHandler.Root).Methods(http.MethodGet)
	router.HandleFunc("/rate/{currency}", rateHandler.GetRate).Methods(http.MethodGet)
	router.HandleFunc("/history", rateHandler.GetHistory).Methods(http.MethodGet)
	router.HandleFunc("/convert", rateHandler.Convert).Methods(http.MethodGet)

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Se envuelve de adentro hacia afuera; tracing queda como el más externo
	var h http.Handler = router
	h = middleware.NewAuthMiddleware(deps.Auth).Handler(h)
	h = ratelimit.NewRateLimitMiddleware(deps.RateLimit).Handler(h)
	h = middleware.CORSMiddleware(h)
	h = metrics.HTTPMetricsMiddleware(h)
	h = middleware.LoggingMiddleware(h)
	h = middleware.RequestTracingMiddleware(h)

	return h
}
