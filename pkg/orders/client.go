package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds each lookup. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Client fetches orders from the remote order service.
type Client struct {
	endpoint Endpoint
	http     *http.Client
	timeout  time.Duration
}

// NewClient constructs a Client for endpoint.
func NewClient(endpoint Endpoint, options ...ClientOption) *Client {
	client := &Client{
		endpoint: endpoint.Normalize(),
		http:     &http.Client{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(client)
	}
	return client
}

// Endpoint returns the normalized endpoint the client targets.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Fetch issues one GET for identifier and returns the response body.
func (c *Client) Fetch(ctx context.Context, identifier string) (json.RawMessage, error) {
	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.endpoint.URL(identifier), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}
	if !json.Valid(data) {
		return nil, ErrMalformedBody
	}
	return json.RawMessage(data), nil
}
