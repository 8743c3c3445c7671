package middleware

import (
	"net/http"
	"time"

	"fx-rate-service/internal/infrastructure/logging"
)

// RequestIDHeader es el header de correlación de requests
const RequestIDHeader = "X-Request-ID"

// responseWriter captura el status code y el tamaño de la respuesta
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

func (rw *responseWriter) status() int {
	if rw.statusCode == 0 {
		return http.StatusOK
	}
	return rw.statusCode
}

// RequestTracingMiddleware asigna un request ID y registra inicio y fin de cada request
func RequestTracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = logging.GenerateRequestID()
		}

		startTime := time.Now()
		ctx := logging.WithRequestID(r.Context(), requestID)

		w.Header().Set(RequestIDHeader, requestID)

		wrapped := &responseWriter{ResponseWriter: w}

		remoteIP := getClientIP(r)

		logging.Info(ctx, "HTTP request started", logging.Fields{
			logging.FieldHTTPMethod:   r.Method,
			logging.FieldHTTPPath:     r.URL.Path,
			logging.FieldHTTPQuery:    r.URL.RawQuery,
			logging.FieldHTTPRemoteIP: remoteIP,
		})

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		durationMs := float64(time.Since(startTime).Nanoseconds()) / 1e6

		logging.HTTP().RequestCompleted(ctx, r.Method, r.URL.Path, wrapped.status(), durationMs)
	})
}
