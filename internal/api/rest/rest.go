// Package rest is the HTTP implementation of the api.Client interface.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dobrye-dela/dobro-go/internal/api"
)

// Client talks to the platform backend over HTTP. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger

	cacheTTL time.Duration
	cache    *memoryCache

	mu    sync.RWMutex
	token string
}

var _ api.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithCacheTTL enables caching of public GET responses for the duration.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

// New creates a new client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		log:     logrus.StandardLogger(),
		cache:   newMemoryCache(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// SetToken sets the bearer credential; empty clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FileURL resolves a file reference against this client's base URL.
func (c *Client) FileURL(path string) string {
	return api.FileURL(c.baseURL, path)
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// doRaw performs one request and returns the response body. A non-2xx
// status becomes an *api.Error with the server-provided detail.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	}).Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &api.Error{
			StatusCode: resp.StatusCode,
			Detail:     api.ParseErrorDetail(b),
		}
	}

	return b, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var (
		body        io.Reader
		contentType string
	)

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	b, err := c.doRaw(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// getPublic is a GET against an unauthenticated endpoint, cached for
// cacheTTL when caching is enabled.
func (c *Client) getPublic(ctx context.Context, path string, query url.Values, out interface{}) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	if c.cacheTTL > 0 {
		if b := c.cache.Get(key); b != nil {
			return json.Unmarshal(b, out)
		}
	}

	b, err := c.doRaw(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}

	if c.cacheTTL > 0 {
		c.cache.Set(key, b, c.cacheTTL)
	}

	return json.Unmarshal(b, out)
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}

	return url.Values{"limit": []string{strconv.Itoa(limit)}}
}
