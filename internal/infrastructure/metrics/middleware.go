package metrics

import (
	"net/http"
	"strings"
	"time"
)

// Rutas fijas que se usan tal cual como etiqueta
var staticRoutes = map[string]struct{}{
	"/":        {},
	"/history": {},
	"/convert": {},
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

// HTTPMetricsMiddleware registra cantidad, duración y tamaño de cada respuesta
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), rec.status, time.Since(start).Seconds(), rec.bytes)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// normalizePath colapsa /rate/{currency} y cualquier ruta desconocida
// para mantener acotada la cardinalidad de las etiquetas
func normalizePath(path string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	if _, ok := staticRoutes[path]; ok {
		return path
	}

	switch {
	case strings.HasPrefix(path, "/rate/"):
		return "/rate/{currency}"
	case strings.HasPrefix(path, "/swagger"):
		return "/swagger"
	default:
		return "/unknown"
	}
}
