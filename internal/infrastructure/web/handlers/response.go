package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/application/services"
	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/infrastructure/logging"
)

// writeJSON escribe una respuesta JSON preservando el contexto de la request
func writeJSON(w http.ResponseWriter, ctx context.Context, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.ErrorWithError(ctx, "Failed to encode JSON response", err, logging.Fields{
			logging.FieldStatusCode: statusCode,
		})
	}
}

func writeBadRequest(w http.ResponseWriter, ctx context.Context, err error) {
	writeJSON(w, ctx, http.StatusBadRequest, dto.NewErrorResponse(err.Error(), dto.CodeInvalidParameter))
}

// writeServiceError traduce errores del servicio a status HTTP
func writeServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	status, code := classifyError(err)

	if status >= http.StatusInternalServerError {
		logging.ErrorWithError(ctx, "Request failed", err, logging.Fields{
			logging.FieldStatusCode: status,
		})
	}

	writeJSON(w, ctx, status, dto.NewErrorResponse(err.Error(), code))
}

func classifyError(err error) (int, string) {
	var fetchErr *entities.FetchError

	switch {
	case errors.Is(err, services.ErrUnsupportedCurrency):
		return http.StatusBadRequest, dto.CodeUnsupportedCurrency
	case errors.Is(err, services.ErrInvalidDays):
		return http.StatusBadRequest, dto.CodeInvalidDays
	case errors.Is(err, services.ErrInvalidAmount):
		return http.StatusBadRequest, dto.CodeInvalidAmount
	case errors.As(err, &fetchErr):
		return fetchErr.HTTPStatus(), dto.CodeUpstreamError
	case errors.Is(err, services.ErrRateNotFound):
		return http.StatusInternalServerError, dto.CodeRateNotFound
	default:
		return http.StatusInternalServerError, dto.CodeInternalError
	}
}
