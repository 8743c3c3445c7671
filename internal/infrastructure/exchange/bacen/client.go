package bacen

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/exchange"
	"fx-rate-service/pkg/utils"
)

const (
	ProviderName      = "bacen"
	DefaultBaseURL    = "https://api.bcb.gov.br/dados/serie"
	DefaultWindowDays = 30
	seriesEndpoint    = "/bcdata.sgs/dados"
)

// Client consulta las series de cotización del SGS del Banco Central
type Client struct {
	baseURL    string
	windowDays int
	fetcher    *exchange.Fetcher
	clock      utils.Clock
}

// Option personaliza el cliente
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client usado para las requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.fetcher = exchange.NewFetcherWithClient(ProviderName, httpClient)
	}
}

// WithClock inyecta el reloj usado para calcular la ventana de fechas
func WithClock(clock utils.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// NewClient crea un cliente a partir de la configuración
func NewClient(cfg config.BacenConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		windowDays: cfg.WindowDays,
		fetcher:    exchange.NewFetcher(ProviderName, cfg.Timeout),
		clock:      utils.SystemClock(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.windowDays <= 0 {
		c.windowDays = DefaultWindowDays
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRate retorna el último valor publicado dentro de la ventana reciente
func (c *Client) FetchRate(ctx context.Context, currency entities.Currency) (float64, error) {
	end := c.clock.Now()
	entries, err := c.fetchSeries(ctx, currency, utils.DaysAgo(end, c.windowDays), end)
	if err != nil {
		return 0, err
	}

	value, err := latestValue(entries)
	if err != nil {
		return 0, entities.NewFetchError(ProviderName, fmt.Sprintf("no usable rate for %s", currency), err)
	}
	return value, nil
}

// FetchHistory retorna la serie diaria entre start y end
func (c *Client) FetchHistory(ctx context.Context, currency entities.Currency, start, end time.Time) (entities.HistorySeries, error) {
	entries, err := c.fetchSeries(ctx, currency, start, end)
	if err != nil {
		return nil, err
	}

	series, err := toHistory(entries)
	if err != nil {
		return nil, entities.NewFetchError(ProviderName, fmt.Sprintf("invalid history for %s", currency), err)
	}
	return series, nil
}

func (c *Client) fetchSeries(ctx context.Context, currency entities.Currency, start, end time.Time) ([]SeriesEntry, error) {
	seriesID, ok := currency.SeriesID()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, currency)
	}

	body, err := c.fetcher.Get(ctx, seriesEndpoint, c.seriesURL(seriesID, start, end))
	if err != nil {
		return nil, err
	}

	entries, err := decodeSeries(body)
	if err != nil {
		return nil, entities.NewFetchError(ProviderName, fmt.Sprintf("unusable series %d for %s", seriesID, currency), err)
	}
	return entries, nil
}

func (c *Client) seriesURL(seriesID int, start, end time.Time) string {
	query := url.Values{}
	query.Set("formato", "json")
	query.Set("dataInicial", utils.FormatBacenDate(start))
	query.Set("dataFinal", utils.FormatBacenDate(end))
	return fmt.Sprintf("%s/bcdata.sgs.%d/dados?%s", c.baseURL, seriesID, query.Encode())
}
