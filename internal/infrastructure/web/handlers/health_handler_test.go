package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fx-rate-service/internal/application/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler_Health(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHealthHandler(nil).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		handler    *HealthHandler
		wantStatus int
		wantState  string
	}{
		{name: "cache responde", handler: NewHealthHandler(stubPinger{}), wantStatus: http.StatusOK, wantState: "ready"},
		{name: "sin pinger", handler: NewHealthHandler(nil), wantStatus: http.StatusOK, wantState: "ready"},
		{name: "cache caído", handler: NewHealthHandler(stubPinger{err: errors.New("connection refused")}), wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.handler.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body dto.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Status)
		})
	}
}
