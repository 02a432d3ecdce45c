// Package marketplace provides a thin HTTP client for the EV marketplace
// backend. Responses are returned as decoded JSON without interpretation;
// callers resolve the envelope with pkg/envelope.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/donaldgifford/voltmarket/internal/metrics"
)

// Resource names a backend collection addressable by ID.
type Resource string

// Resource constants.
const (
	ResourceBattery Resource = "battery"
	ResourceVehicle Resource = "vehicle"
	ResourceListing Resource = "listing"
)

// ErrUnknownKind is returned by FetchEntityByID for an unrecognized resource.
var ErrUnknownKind = errors.New("unknown entity kind")

// APIError is a non-2xx answer from the backend. Body holds the decoded
// JSON body when there was one, so failure envelopes stay inspectable.
type APIError struct {
	Status int
	Body   any
	Raw    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketplace API error (HTTP %d): %s", e.Status, e.Raw)
}

// Client is a thin, rate limited HTTP client for the marketplace backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithRateLimit limits outbound calls to perSecond with the given burst.
// A non-positive perSecond disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a new marketplace client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, op, path string) (any, error) {
	return c.do(ctx, op, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, op, path string, body any) (any, error) {
	return c.do(ctx, op, http.MethodPost, path, body)
}

func (c *Client) put(ctx context.Context, op, path string, body any) (any, error) {
	return c.do(ctx, op, http.MethodPut, path, body)
}

func (c *Client) del(ctx context.Context, op, path string) (any, error) {
	return c.do(ctx, op, http.MethodDelete, path, nil)
}

// do sends one request and returns the decoded JSON body. An empty body
// decodes to nil; a non-JSON 2xx body is returned as a string.
func (c *Client) do(ctx context.Context, op, method, path string, body any) (any, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	start := time.Now()
	defer func() {
		metrics.MarketplaceRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("marketplace backend not reachable at %s: %w", c.baseURL, err)
		}
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	decoded := decode(respBody)

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug("marketplace request failed",
			"operation", op,
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return decoded, &APIError{Status: resp.StatusCode, Body: decoded, Raw: string(respBody)}
	}

	return decoded, nil
}

func decode(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

// Ping reports whether the backend answers HTTP at all. Any status counts
// as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinging marketplace backend at %s: %w", c.baseURL, err)
	}
	resp.Body.Close()
	return nil
}
