package handlers

import (
	"context"
	"net/http"
	"time"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/domain/interfaces"
)

const readyCheckTimeout = 2 * time.Second

// HealthHandler maneja los endpoints de health check
type HealthHandler struct {
	cache interfaces.Pinger
}

// NewHealthHandler crea una nueva instancia del health handler.
// cache puede ser nil si el backend no soporta ping.
func NewHealthHandler(cache interfaces.Pinger) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running correctly. Responds quickly without checking external dependencies.
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running correctly"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"service": "running",
	}

	writeJSON(w, r.Context(), http.StatusOK, dto.NewHealthResponse("healthy", services))
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the cache backend answers. Upstream providers are not called.
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready to receive traffic"
// @Failure 503 {object} dto.HealthResponse "Cache backend is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{"service": "ready"}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		if err := h.cache.Ping(ctx); err != nil {
			services["cache"] = "error: " + err.Error()
			writeJSON(w, r.Context(), http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
			return
		}
	}

	services["cache"] = "ready"
	writeJSON(w, r.Context(), http.StatusOK, dto.NewHealthResponse("ready", services))
}
