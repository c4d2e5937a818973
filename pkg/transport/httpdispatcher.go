package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/lumeniq/adminsdk/internal/common/logtrace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Configurator defines the interface for providing server configuration and
// authentication details to the dispatcher. Implementations must provide the
// server URL; the API key and timeout are optional.
type Configurator interface {
	GetServerURL() string
	GetAPIKey() string
	GetTimeout() time.Duration
}

// ClientOptions contains options for configuring the HTTP dispatcher.
type ClientOptions struct {
	DisableCertValidation bool // If true, skips SSL certificate validation
}

// HTTPDispatcher is the production Dispatcher over net/http. It handles URL
// construction, body marshaling, and header application. One instance is
// shared by every resource facet under a client; it holds no per-request
// state and is safe for concurrent use.
type HTTPDispatcher struct {
	config     Configurator
	httpClient *http.Client
}

// NewHTTPDispatcher creates a dispatcher using the provided configuration.
// The config parameter must implement the Configurator interface.
func NewHTTPDispatcher(config Configurator, opts ...ClientOptions) *HTTPDispatcher {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}

	httpClient := &http.Client{
		Timeout: config.GetTimeout(),
	}
	if clientOpts.DisableCertValidation {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return &HTTPDispatcher{
		config:     config,
		httpClient: httpClient,
	}
}

// Get performs a GET request against the given API path.
func (d *HTTPDispatcher) Get(ctx context.Context, reqPath string, meta Meta) (*Response, error) {
	return d.doRequest(ctx, http.MethodGet, reqPath, nil, meta)
}

// Post performs a POST request with the given body, marshaled as JSON.
func (d *HTTPDispatcher) Post(ctx context.Context, reqPath string, body any, meta Meta) (*Response, error) {
	return d.doRequest(ctx, http.MethodPost, reqPath, body, meta)
}

// Put performs a PUT request with the given body, marshaled as JSON.
func (d *HTTPDispatcher) Put(ctx context.Context, reqPath string, body any, meta Meta) (*Response, error) {
	return d.doRequest(ctx, http.MethodPut, reqPath, body, meta)
}

// doRequest makes exactly one HTTP request. Every completed exchange is
// returned as a Response regardless of status code; failures that never
// produced a server response are wrapped into an HTTPError with status 400
// so callers receive a response-shaped error rather than a bare one.
func (d *HTTPDispatcher) doRequest(ctx context.Context, method, reqPath string, body any, meta Meta) (*Response, error) {
	u, err := url.Parse(d.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = path.Join(u.Path, reqPath)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for k, v := range meta.Headers {
		req.Header.Set(k, v)
	}
	// Fall back to the configured API key if the caller supplied no auth
	if req.Header.Get("Authorization") == "" && d.config.GetAPIKey() != "" {
		req.Header.Set("Authorization", d.config.GetAPIKey())
	}

	requestID := logtrace.NewRequestID()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		log.Debug().Str("request_id", requestID).Str("method", method).Str("path", reqPath).Err(err).Msg("request failed")
		return nil, &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("failed to read response body: %v", err),
		}
	}

	log.Debug().Str("request_id", requestID).Str("method", method).Str("path", reqPath).Int("status", resp.StatusCode).Msg("request completed")

	return &Response{
		Status: resp.StatusCode,
		Body:   respBody,
	}, nil
}
