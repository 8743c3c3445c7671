package middleware

import (
	"net/http"

	"fx-rate-service/internal/infrastructure/logging"
)

// Parámetros de query que vale la pena ver en debug
var loggedParams = []string{"base", "days", "from_currency", "to_currency", "amount"}

// LoggingMiddleware registra cada request recibido. El cierre (status y
// duración) lo registra RequestTracingMiddleware.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logging.HTTP().RequestReceived(ctx, r.Method, r.URL.Path, r.UserAgent(), getClientIP(r))

		if params := requestParams(r); len(params) > 0 {
			logging.Debug(ctx, "Request parameters", params)
		}

		next.ServeHTTP(w, r)
	})
}

func requestParams(r *http.Request) logging.Fields {
	query := r.URL.Query()
	params := logging.Fields{}
	for _, name := range loggedParams {
		if v := query.Get(name); v != "" {
			params[name] = v
		}
	}
	return params
}
