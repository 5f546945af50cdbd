package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgcache "SectorScope/pkg/cache"
	xhttp "SectorScope/pkg/http"
	applogger "SectorScope/pkg/logger"
)

const defaultProviderTimeout = 30 * time.Second

// HTTPProviderBase centralizes client construction and GET/POST request
// handling for the upstream data providers.
type HTTPProviderBase struct {
	baseURL string
	client  *xhttp.Client
}

func NewHTTPProviderBase(baseURL string, timeout time.Duration) *HTTPProviderBase {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &HTTPProviderBase{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// GetJSON fetches `path` under baseURL with query params and decodes JSON
// into dest.
func (b *HTTPProviderBase) GetJSON(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("provider http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         b.baseURL + path,
		QueryParams: query,
	}, dest)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return nil
}

// PostJSON posts the given payload to `path` under baseURL and decodes JSON
// into dest.
func (b *HTTPProviderBase) PostJSON(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	if b.client == nil || b.baseURL == "" {
		return fmt.Errorf("provider http client not initialized")
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    b.baseURL + path,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return nil
}

// GetBytes downloads the raw response body, for non-JSON payloads such as
// spreadsheets.
func (b *HTTPProviderBase) GetBytes(ctx context.Context, rawURL string) ([]byte, error) {
	if b.client == nil {
		return nil, fmt.Errorf("provider http client not initialized")
	}
	var body []byte
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    rawURL,
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", rawURL, err)
	}
	return body, nil
}

// fetchCached runs fetch through a JSON-string cache. Cache failures fall
// through to a live fetch; only the fetch error is ever surfaced.
func fetchCached[T any](ctx context.Context, c pkgcache.Service, log *applogger.Logger, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if c != nil {
		var raw string
		if err := c.Get(ctx, key, &raw); err == nil {
			var cached T
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	fetched, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if c != nil {
		if raw, err := json.Marshal(fetched); err == nil {
			if err := c.Set(ctx, key, string(raw), ttl); err != nil && log != nil {
				log.Warn("cache write failed", applogger.String("key", key), applogger.Error(err))
			}
		}
	}
	return fetched, nil
}
