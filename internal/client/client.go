// Package client talks to the MailReply service and drives the reply form.
//
// Client is the transport for POST /api/parse and GET /api/history. Controller
// runs one submit through validation, the request and rendering against a View,
// then refreshes the history list. The terminal form, the CLI and tests all
// plug in their own View.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jroosing/mailreply/internal/logging"
)

const (
	// DefaultServerURL is where the service listens by default.
	DefaultServerURL = "http://127.0.0.1:8080"

	parsePath   = "/api/parse"
	historyPath = "/api/history"

	maxResponseBytes = 4 << 20
)

// Client calls the MailReply HTTP API. It never retries and sets no timeout of
// its own; callers cancel through the context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	apiKey     string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithAPIKey sends key as X-API-Key on every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the service at baseURL (scheme and host, optional path prefix).
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultServerURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: missing host", baseURL)
	}

	c := &Client{baseURL: u, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDiscard(c.logger)
	return c, nil
}

// BaseURL returns the normalized service URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type parseRequest struct {
	Email string `json:"email"`
}

// Parse posts email to /api/parse. The body is decoded whatever the status:
// a non-2xx status yields *HTTPError, a 2xx body with a truthy "error" field
// yields *LogicError, and an undecodable body yields a plain error.
func (c *Client) Parse(ctx context.Context, email string) (*ParseResponse, error) {
	body, err := json.Marshal(parseRequest{Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	status, raw, err := c.do(ctx, http.MethodPost, parsePath, body)
	if err != nil {
		return nil, err
	}

	resp, err := newParseResponse(raw)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		msg, ok := errorField(resp.fields)
		if !ok {
			msg = httpStatusMessage(status)
		}
		return nil, &HTTPError{StatusCode: status, Message: msg}
	}
	if msg, ok := errorField(resp.fields); ok {
		return nil, &LogicError{Message: msg}
	}
	return resp, nil
}

// History fetches /api/history in server order.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	status, raw, err := c.do(ctx, http.MethodGet, historyPath, nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]any
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode history: %w", err)
		}
		msg, ok := errorField(fields)
		switch {
		case !isSuccess(status) && ok:
			return nil, &HTTPError{StatusCode: status, Message: msg}
		case !isSuccess(status):
			return nil, &HTTPError{StatusCode: status, Message: httpStatusMessage(status)}
		case ok:
			return nil, &LogicError{Message: msg}
		default:
			return nil, fmt.Errorf("failed to decode history: expected a JSON array")
		}
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	if !isSuccess(status) {
		return nil, &HTTPError{StatusCode: status, Message: httpStatusMessage(status)}
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	u := c.baseURL.JoinPath(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	c.logger.Debug("api request", "method", method, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(raw) > maxResponseBytes {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: response exceeds %d bytes", method, path, maxResponseBytes)
	}

	c.logger.Debug("api response", "method", method, "url", u.String(), "status", resp.StatusCode, "bytes", len(raw))
	return resp.StatusCode, raw, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
