package coingecko

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/infrastructure/config"
	"fx-rate-service/internal/infrastructure/exchange"
	"fx-rate-service/pkg/utils"

	"github.com/tidwall/gjson"
)

const (
	ProviderName      = "coingecko"
	DefaultBaseURL    = "https://api.coingecko.com/api/v3"
	DefaultCoinID     = "bitcoin"
	DefaultVsCurrency = "brl"

	simplePriceEndpoint = "/simple/price"
	marketChartEndpoint = "/coins/market_chart"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrMissingPrice   = errors.New("price not present in response")
	ErrEmptyChart     = errors.New("market chart without prices")
)

// Client consulta precios de BTC en CoinGecko
type Client struct {
	baseURL    string
	coinID     string
	vsCurrency string
	fetcher    *exchange.Fetcher
}

// Option personaliza el cliente
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client usado para las requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.fetcher = exchange.NewFetcherWithClient(ProviderName, httpClient)
	}
}

// NewClient crea un cliente a partir de la configuración
func NewClient(cfg config.CoinGeckoConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		coinID:     cfg.CoinID,
		vsCurrency: strings.ToLower(cfg.VsCurrency),
		fetcher:    exchange.NewFetcher(ProviderName, cfg.Timeout),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.coinID == "" {
		c.coinID = DefaultCoinID
	}
	if c.vsCurrency == "" {
		c.vsCurrency = DefaultVsCurrency
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSpot retorna el precio actual de BTC en BRL
func (c *Client) FetchSpot(ctx context.Context) (float64, error) {
	query := url.Values{}
	query.Set("ids", c.coinID)
	query.Set("vs_currencies", c.vsCurrency)

	body, err := c.fetcher.Get(ctx, simplePriceEndpoint, c.baseURL+simplePriceEndpoint+"?"+query.Encode())
	if err != nil {
		return 0, err
	}

	if !gjson.ValidBytes(body) {
		return 0, entities.NewFetchError(ProviderName, "unusable spot response", ErrInvalidPayload)
	}

	price := gjson.GetBytes(body, gjson.Escape(c.coinID)+"."+gjson.Escape(c.vsCurrency))
	if price.Type != gjson.Number {
		return 0, entities.NewFetchError(ProviderName, "unusable spot response",
			fmt.Errorf("%w: %s.%s", ErrMissingPrice, c.coinID, c.vsCurrency))
	}
	return price.Float(), nil
}

// FetchHistory retorna un valor por día de los últimos days días.
// Si hay varias muestras en el mismo día UTC, gana la última recibida.
func (c *Client) FetchHistory(ctx context.Context, days int) (entities.HistorySeries, error) {
	query := url.Values{}
	query.Set("vs_currency", c.vsCurrency)
	query.Set("days", strconv.Itoa(days))

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?%s", c.baseURL, url.PathEscape(c.coinID), query.Encode())
	body, err := c.fetcher.Get(ctx, marketChartEndpoint, endpoint)
	if err != nil {
		return nil, err
	}

	series, err := parseMarketChart(body)
	if err != nil {
		return nil, entities.NewFetchError(ProviderName, "unusable market chart", err)
	}
	return series, nil
}

// parseMarketChart lee "prices": [[ms, price], ...]
func parseMarketChart(body []byte) (entities.HistorySeries, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidPayload
	}

	prices := gjson.GetBytes(body, "prices")
	if !prices.IsArray() {
		return nil, fmt.Errorf("%w: prices is not an array", ErrInvalidPayload)
	}

	points := prices.Array()
	if len(points) == 0 {
		return nil, ErrEmptyChart
	}

	series := make(entities.HistorySeries)
	for i, point := range points {
		pair := point.Array()
		if len(pair) < 2 || pair[0].Type != gjson.Number || pair[1].Type != gjson.Number {
			return nil, fmt.Errorf("%w: malformed sample at index %d", ErrInvalidPayload, i)
		}
		series[utils.UnixMilliToISODate(pair[0].Int())] = entities.HistoryPoint{BRL: pair[1].Float()}
	}
	return series, nil
}
