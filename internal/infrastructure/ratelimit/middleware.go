package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/logging"
	"fx-rate-service/internal/infrastructure/metrics"
)

// Rutas operativas que nunca consumen tokens
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

// RateLimitMiddleware aplica un token bucket por IP de cliente
type RateLimitMiddleware struct {
	limiter *RateLimiterCollection
}

// NewRateLimitMiddleware crea el middleware; con Enabled=false deja pasar todo
func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	if !cfg.Enabled {
		return newRateLimitMiddleware(nil, false)
	}
	return newRateLimitMiddleware(NewRateLimiterCollection(cfg.Capacity, cfg.RefillRate), true)
}

func newRateLimitMiddleware(limiter *RateLimiterCollection, enabled bool) *RateLimitMiddleware {
	if !enabled {
		limiter = nil
	}
	return &RateLimitMiddleware{limiter: limiter}
}

func (m *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	if m.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, exempt := exemptPaths[r.URL.Path]; exempt {
			next.ServeHTTP(w, r)
			return
		}

		clientID := getClientID(r)
		allowed := m.limiter.Allow(clientID)
		metrics.RecordRateLimitResult(allowed)

		if !allowed {
			logging.Security().RateLimitExceeded(r.Context(), clientID, r.URL.Path)
			writeTooManyRequests(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(m.limiter.Tokens(clientID)))
		next.ServeHTTP(w, r)
	})
}

// getClientID: primera IP de X-Forwarded-For, luego X-Real-IP, luego RemoteAddr sin puerto
func getClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func writeTooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	body := dto.NewErrorResponse("rate limit exceeded, slow down your requests", dto.CodeRateLimitExceeded)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.ErrorWithError(r.Context(), "Failed to encode rate limit response", err, nil)
	}
}
