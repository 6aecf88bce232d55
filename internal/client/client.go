// ABOUTME: HTTP client for the users REST service
// ABOUTME: Injects the bearer token, encodes/decodes JSON and normalizes failures

package client

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
	"time"
)

// DefaultTimeout matches the request timeout used by the CLI commands
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current auth token; "" means anonymous
type TokenSource interface {
	Token() string
}

// Client is the API client for the users service
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithTokenSource attaches a bearer token to every request when available
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithTimeout sets the overall request timeout. Zero leaves the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new API client with the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request to baseURL+path. A non-nil body is sent as JSON.
// On success a non-empty response body is decoded into out (when out is non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.Debug("API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		nerr := c.handleRequestError(ctx, err)
		slog.Debug("API request failed", "method", method, "path", path, "error", nerr)
		return nerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}

	slog.Debug("API response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(data))

	hasBody := len(bytes.TrimSpace(data)) > 0
	if hasBody && !json.Valid(data) {
		return &MalformedResponseError{Status: resp.StatusCode, Err: errors.New("body is not valid JSON")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.handleErrorResponse(method, path, resp, data)
	}

	if out == nil || !hasBody {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &MalformedResponseError{Status: resp.StatusCode, Err: err}
	}
	return nil
}

// Request is Do with a typed result. An empty body yields the zero value.
func Request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	err := c.Do(ctx, method, path, body, &out)
	return out, err
}

// handleRequestError converts transport and context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return &NetworkError{Message: "request canceled", Err: err}
	}
	if ctx.Err() == context.DeadlineExceeded {
		return &NetworkError{Message: "request timed out", Err: err}
	}
	return &NetworkError{
		Message: fmt.Sprintf("cannot connect to backend at %s: %v", c.baseURL, err),
		Err:     err,
	}
}

// handleErrorResponse picks the message from the body's error or message
// field, falling back to the status text
func (c *Client) handleErrorResponse(method, path string, resp *http.Response, data []byte) error {
	reqErr := &RequestError{
		Method: method,
		Path:   path,
		Status: resp.StatusCode,
	}

	var fields struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if len(data) > 0 && json.Unmarshal(data, &fields) == nil {
		reqErr.Message = firstMessage(fields.Error, fields.Message)
	}
	if reqErr.Message == "" {
		reqErr.Message = http.StatusText(resp.StatusCode)
	}
	if reqErr.Message == "" {
		reqErr.Message = DefaultErrorMessage
	}
	return reqErr
}

// firstMessage returns the first candidate that renders as a non-empty message
func firstMessage(candidates ...any) string {
	for _, v := range candidates {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			if val != "" {
				return val
			}
		case bool:
			if val {
				return "true"
			}
		default:
			if data, err := json.Marshal(val); err == nil {
				return string(data)
			}
		}
	}
	return ""
}
