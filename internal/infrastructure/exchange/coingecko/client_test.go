package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockServer(t *testing.T, statusCode int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(serverURL string) *Client {
	return NewClient(config.CoinGeckoConfig{
		BaseURL:    serverURL,
		Timeout:    2 * time.Second,
		CoinID:     "bitcoin",
		VsCurrency: "BRL",
	})
}

func TestClient_FetchSpot(t *testing.T) {
	server := createMockServer(t, http.StatusOK, `{"bitcoin":{"brl":352104.12}}`, func(r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "brl", r.URL.Query().Get("vs_currencies"))
	})

	price, err := newTestClient(server.URL).FetchSpot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 352104.12, price)
}

func TestClient_FetchSpot_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
	}{
		{name: "missing currency", status: http.StatusOK, body: `{"bitcoin":{"usd":70000}}`, wantErr: ErrMissingPrice, wantStatus: 500},
		{name: "empty object", status: http.StatusOK, body: `{}`, wantErr: ErrMissingPrice, wantStatus: 500},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrInvalidPayload, wantStatus: 500},
		{name: "price as string", status: http.StatusOK, body: `{"bitcoin":{"brl":"352104"}}`, wantErr: ErrMissingPrice, wantStatus: 500},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"status":{"error_code":429}}`, wantStatus: 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := createMockServer(t, tt.status, tt.body, nil)

			_, err := newTestClient(server.URL).FetchSpot(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrUpstream))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			var fe *entities.FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantStatus, fe.HTTPStatus())
		})
	}
}

func TestClient_FetchHistory_CollapsesSameDaySamples(t *testing.T) {
	// 2024-03-01T10:00Z, 2024-03-01T22:00Z, 2024-03-02T01:00Z
	body := `{"prices":[[1709287200000,340000.0],[1709330400000,345000.5],[1709341200000,350000.25]],"market_caps":[],"total_volumes":[]}`
	server := createMockServer(t, http.StatusOK, body, func(r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)
		assert.Equal(t, "brl", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "2", r.URL.Query().Get("days"))
	})

	series, err := newTestClient(server.URL).FetchHistory(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, entities.HistorySeries{
		"2024-03-01": {BRL: 345000.5},
		"2024-03-02": {BRL: 350000.25},
	}, series)
}

func TestParseMarketChart_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "no prices", body: `{"market_caps":[]}`, wantErr: ErrInvalidPayload},
		{name: "empty prices", body: `{"prices":[]}`, wantErr: ErrEmptyChart},
		{name: "short sample", body: `{"prices":[[1709287200000]]}`, wantErr: ErrInvalidPayload},
		{name: "string price", body: `{"prices":[[1709287200000,"1"]]}`, wantErr: ErrInvalidPayload},
		{name: "invalid json", body: `{"prices":`, wantErr: ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMarketChart([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_FetchHistory_UpstreamError(t *testing.T) {
	server := createMockServer(t, http.StatusInternalServerError, `oops`, nil)

	_, err := newTestClient(server.URL).FetchHistory(context.Background(), 7)

	var fe *entities.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
}
