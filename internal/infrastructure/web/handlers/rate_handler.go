package handlers

import (
	"net/http"

	"fx-rate-service/internal/application/dto"
	"fx-rate-service/internal/domain/interfaces"
	"fx-rate-service/internal/infrastructure/logging"

	"github.com/gorilla/mux"
)

// RateHandler maneja los endpoints de cotizaciones, histórico y conversión
type RateHandler struct {
	rateService interfaces.RateService
	mapper      *dto.RateMapper
}

// NewRateHandler crea una nueva instancia del handler de cotizaciones
func NewRateHandler(rateService interfaces.RateService) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		mapper:      dto.NewRateMapper(),
	}
}

// Root godoc
// @Summary Service banner
// @Tags rates
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router / [get]
func (h *RateHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), http.StatusOK, dto.StatusResponse{Status: "Bacen FX API is running"})
}

// GetRate godoc
// @Summary Current rate in BRL
// @Description Returns the spot rate of one unit of the currency in BRL. Served from cache while fresh.
// @Tags rates
// @Produce json
// @Param currency path string true "Currency code" Enums(USD, EUR, GBP, BTC)
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported currency"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /rate/{currency} [get]
func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	currency := mux.Vars(r)["currency"]

	rate, err := h.rateService.GetRate(ctx, currency)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, ctx, http.StatusOK, h.mapper.ToRateResponse(rate))
}

// GetHistory godoc
// @Summary Daily history in BRL
// @Description Returns one value per day for the last N days, keyed by YYYY-MM-DD.
// @Tags rates
// @Produce json
// @Param base query string false "Currency code" default(USD)
// @Param days query int false "Number of days (1-365)" default(30)
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid base or days"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /history [get]
func (h *RateHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	request, err := dto.NewHistoryRequest(query.Get("base"), query.Get("days"))
	if err != nil {
		writeBadRequest(w, ctx, err)
		return
	}

	series, err := h.rateService.GetHistory(ctx, request.Base, request.Days)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	logging.Debug(ctx, "History response ready", logging.Fields{
		logging.FieldCurrency: request.Base,
		logging.FieldDays:     request.Days,
	})

	writeJSON(w, ctx, http.StatusOK, h.mapper.ToHistoryResponse(series))
}

// Convert godoc
// @Summary Convert an amount between currencies
// @Description Converts through BRL: amount * rate(from) / rate(to). BRL is accepted on either side.
// @Tags rates
// @Produce json
// @Param from_currency query string true "Source currency" Enums(USD, EUR, GBP, BTC, BRL)
// @Param to_currency query string true "Target currency" Enums(USD, EUR, GBP, BTC, BRL)
// @Param amount query number true "Amount greater than zero"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /convert [get]
func (h *RateHandler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	request, err := dto.NewConvertRequest(query.Get("from_currency"), query.Get("to_currency"), query.Get("amount"))
	if err != nil {
		writeBadRequest(w, ctx, err)
		return
	}

	conversion, err := h.rateService.Convert(ctx, request.From, request.To, request.Amount)
	if err != nil {
		writeServiceError(w, ctx, err)
		return
	}

	writeJSON(w, ctx, http.StatusOK, h.mapper.ToConvertResponse(conversion))
}
