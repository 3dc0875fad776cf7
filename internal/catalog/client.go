package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Catalog is the read-only contract the session controllers depend on.
// It is implemented by *Client and by test doubles.
type Catalog interface {
	Search(ctx context.Context, query string) ([]Item, error)
	GetItem(ctx context.Context, id string) (Item, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	limiter   *rate.Limiter
	log       zerolog.Logger
	userAgent string
	timeout   time.Duration
}

const (
	// DefaultAPIURL is used when no api_url is configured.
	DefaultAPIURL = "http://127.0.0.1:8000"

	// DefaultTimeout bounds each request when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "scout/0.1"
	requestIDHeader  = "X-Request-ID"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero or negative disables
// limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger attaches a structured logger for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient builds a Client for the service rooted at apiURL.
func NewClient(apiURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		limiter:   rate.NewLimiter(rate.Inf, 0),
		log:       zerolog.Nop(),
		userAgent: defaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// BaseURL returns the service root the client resolves requests against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Search returns the items matching query, in the order the service ranks them.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	values := url.Values{}
	values.Set("search", query)
	u := c.baseURL.JoinPath("search")
	u.RawQuery = values.Encode()

	var payload []Item
	if _, err := c.get(ctx, "/search", u, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetItem returns the full record for id. A 404 or an empty body yields an
// error matching ErrNotFound.
func (c *Client) GetItem(ctx context.Context, id string) (Item, error) {
	if c == nil {
		return Item{}, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Item{}, fmt.Errorf("product id required: %w", ErrNotFound)
	}
	u := c.baseURL.JoinPath("products", url.PathEscape(id))

	var payload *Item
	status, err := c.get(ctx, "/products/{id}", u, &payload)
	if status == http.StatusNotFound {
		return Item{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Item{}, err
	}
	if payload == nil {
		return Item{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return *payload, nil
}

func (c *Client) get(ctx context.Context, op string, u *url.URL, dest any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, &TransportError{Op: op, Err: fmt.Errorf("rate limit: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("method", req.Method).
			Str("path", u.Path).
			Str("request_id", requestID).
			Dur("duration", time.Since(started)).
			Err(err).
			Msg("catalog request failed")
		return 0, &TransportError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", u.Path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(started)).
		Msg("catalog request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &TransportError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    errors.New(http.StatusText(resp.StatusCode)),
		}
	}
	if dest == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return resp.StatusCode, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return resp.StatusCode, nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	if u.Path == "" {
		u.Path = "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
