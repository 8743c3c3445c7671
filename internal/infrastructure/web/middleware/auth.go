package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/logging"
)

// AuthMiddleware exige un API key en el header configurado
type AuthMiddleware struct {
	config config.AuthConfig
}

func NewAuthMiddleware(config config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		config: config,
	}
}

func (am *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !am.config.Enabled || am.isUnauthenticatedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(am.config.HeaderName)
		if apiKey == "" {
			am.respondWithAuthError(w, r, "API key missing")
			return
		}

		if !am.isValidAPIKey(apiKey) {
			am.respondWithAuthError(w, r, "Invalid API key")
			return
		}

		logging.Debug(r.Context(), "API key authentication successful", logging.Fields{
			logging.FieldHTTPPath:     r.URL.Path,
			logging.FieldHTTPRemoteIP: getClientIP(r),
		})

		next.ServeHTTP(w, r)
	})
}

// isUnauthenticatedPath verifica si la ruta está exenta de autenticación.
// "/" solo exime la raíz exacta; las rutas que terminan en "/" eximen el prefijo.
func (am *AuthMiddleware) isUnauthenticatedPath(path string) bool {
	for _, unauthPath := range am.config.UnauthPaths {
		if path == unauthPath {
			return true
		}
		if unauthPath != "/" && strings.HasSuffix(unauthPath, "/") && strings.HasPrefix(path, unauthPath) {
			return true
		}
	}
	return false
}

func (am *AuthMiddleware) isValidAPIKey(providedKey string) bool {
	return subtle.ConstantTimeCompare([]byte(providedKey), []byte(am.config.APIKey)) == 1
}

func (am *AuthMiddleware) respondWithAuthError(w http.ResponseWriter, r *http.Request, message string) {
	logging.Security().Unauthorized(r.Context(), getClientIP(r), message)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `APIKey header="`+am.config.HeaderName+`"`)
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(dto.NewErrorResponse(message, dto.CodeUnauthorized)); err != nil {
		logging.ErrorWithError(r.Context(), "Failed to encode auth error response", err, nil)
	}
}

// getClientIP considera proxies; X-Forwarded-For puede traer varias IPs
func getClientIP(r *http.Request) string {
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
