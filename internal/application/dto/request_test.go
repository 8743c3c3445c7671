package dto

import (
	"testing"

	"fx-rate-service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "Válido - mayúsculas", raw: "USD", want: "USD"},
		{name: "Válido - minúsculas con espacios", raw: " eur ", want: "EUR"},
		{name: "Válido - formato ok aunque no soportado", raw: "XXX", want: "XXX"},
		{name: "Inválido - vacío", raw: "", wantErr: ErrMissingParameter},
		{name: "Inválido - dos letras", raw: "US", wantErr: ErrInvalidCurrencyCode},
		{name: "Inválido - cuatro letras", raw: "USDT", wantErr: ErrInvalidCurrencyCode},
		{name: "Inválido - dígitos", raw: "U5D", wantErr: ErrInvalidCurrencyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCurrencyCode("from_currency", tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsRequestError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHistoryRequest(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		days     string
		wantBase string
		wantDays int
		wantErr  error
	}{
		{name: "Defaults", wantBase: "USD", wantDays: 30},
		{name: "Valores explícitos", base: "btc", days: "7", wantBase: "BTC", wantDays: 7},
		{name: "Días fuera de rango pasan al servicio", base: "USD", days: "400", wantBase: "USD", wantDays: 400},
		{name: "Inválido - días no numéricos", days: "abc", wantErr: ErrInvalidNumber},
		{name: "Inválido - días decimales", days: "1.5", wantErr: ErrInvalidNumber},
		{name: "Inválido - base mal formada", base: "DOLLAR", wantErr: ErrInvalidCurrencyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewHistoryRequest(tt.base, tt.days)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, req.Base)
			assert.Equal(t, tt.wantDays, req.Days)
		})
	}
}

func TestNewConvertRequest(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		to         string
		amount     string
		wantAmount float64
		wantErr    error
	}{
		{name: "Válido - entero", from: "usd", to: "brl", amount: "100", wantAmount: 100},
		{name: "Válido - decimal", from: "BTC", to: "EUR", amount: "0.25", wantAmount: 0.25},
		{name: "Válido - negativo lo rechaza el servicio", from: "USD", to: "EUR", amount: "-3", wantAmount: -3},
		{name: "Inválido - falta origen", to: "EUR", amount: "1", wantErr: ErrMissingParameter},
		{name: "Inválido - falta amount", from: "USD", to: "EUR", wantErr: ErrMissingParameter},
		{name: "Inválido - amount texto", from: "USD", to: "EUR", amount: "ten", wantErr: ErrInvalidNumber},
		{name: "Inválido - amount NaN", from: "USD", to: "EUR", amount: "NaN", wantErr: ErrInvalidNumber},
		{name: "Inválido - destino mal formado", from: "USD", to: "EURO", amount: "1", wantErr: ErrInvalidCurrencyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewConvertRequest(tt.from, tt.to, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantAmount, req.Amount, 1e-12)
		})
	}
}

func TestRateMapper(t *testing.T) {
	mapper := NewRateMapper()

	rate := mapper.ToRateResponse(&entities.Rate{Currency: entities.GBP, Value: 6.4})
	assert.Equal(t, RateResponse{"GBP": 6.4}, rate)

	history := mapper.ToHistoryResponse(entities.HistorySeries{"2024-03-08": {BRL: 5}})
	assert.Equal(t, HistoryResponse{"2024-03-08": {BRL: 5}}, history)

	converted := mapper.ToConvertResponse(&entities.Conversion{Result: 42})
	assert.Equal(t, 42.0, converted.ConvertedAmount)
}
