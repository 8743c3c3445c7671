package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/internal/infrastructure/logging"
	"fx-rate-service/internal/infrastructure/metrics"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "fx-rate-service/1.0"
	maxBodyBytes     = 10 << 20
	maxErrorSnippet  = 256
)

// Fetcher ejecuta GETs contra un proveedor con un único timeout y sin reintentos.
// Cualquier falla se reporta como *entities.FetchError.
type Fetcher struct {
	provider   string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// NewFetcher crea un fetcher con su propio http.Client
func NewFetcher(provider string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewFetcherWithClient(provider, &http.Client{Timeout: timeout})
}

// NewFetcherWithClient permite inyectar el http.Client (tests, transportes custom)
func NewFetcherWithClient(provider string, client *http.Client) *Fetcher {
	timeout := client.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		provider:   provider,
		httpClient: client,
		timeout:    timeout,
		userAgent:  DefaultUserAgent,
	}
}

// Provider retorna el nombre del proveedor
func (f *Fetcher) Provider() string {
	return f.provider
}

// Timeout retorna el límite aplicado a cada request
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Get ejecuta la request y retorna el body si el status es 2xx.
// endpoint es la etiqueta de baja cardinalidad usada en métricas y logs.
func (f *Fetcher) Get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, entities.NewFetchError(f.provider, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	apiLogger := logging.ExternalAPI()
	apiLogger.RequestStarted(ctx, f.provider, endpoint, http.MethodGet)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	elapsed := time.Since(start)
	elapsedMs := float64(elapsed.Nanoseconds()) / 1e6

	if err != nil {
		metrics.RecordExternalAPICall(f.provider, endpoint, 0, elapsed.Seconds())
		apiLogger.RequestFailed(ctx, f.provider, endpoint, 0, err, elapsedMs)

		msg := "request failed"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = fmt.Sprintf("request timed out after %s", f.timeout)
		}
		return nil, entities.NewFetchError(f.provider, msg, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RecordExternalAPICall(f.provider, endpoint, resp.StatusCode, elapsed.Seconds())

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &entities.FetchError{
			Provider:   f.provider,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status",
		}
		if snippet := strings.TrimSpace(string(body)); snippet != "" {
			if len(snippet) > maxErrorSnippet {
				snippet = snippet[:maxErrorSnippet]
			}
			fe.Err = errors.New(snippet)
		}
		apiLogger.RequestFailed(ctx, f.provider, endpoint, resp.StatusCode, fe, elapsedMs)
		return nil, fe
	}

	if readErr != nil {
		apiLogger.RequestFailed(ctx, f.provider, endpoint, resp.StatusCode, readErr, elapsedMs)
		return nil, entities.NewFetchError(f.provider, "failed to read response body", readErr)
	}

	apiLogger.RequestCompleted(ctx, f.provider, endpoint, resp.StatusCode, elapsedMs)
	return body, nil
}
