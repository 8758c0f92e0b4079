// Package api is the HTTP client for the prediction web app's JSON endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	// maxErrorBody caps how much of a failed response ends up in the error
	maxErrorBody = 512
	// maxBody guards against a runaway response
	maxBody = 8 << 20
)

// ClientConfig configures a Client.
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client talks to the prediction server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// BaseURL returns the server root the client was built for.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// getJSON performs a GET and decodes the body into out. Transport failures
// and non-2xx statuses become *NetworkError; bodies that do not decode
// become *ParseError.
func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out any) (string, error) {
	requestID := uuid.NewString()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return requestID, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestID, &NetworkError{Op: op, URL: target, RequestID: requestID, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("api request",
		"op", op, "url", target, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return requestID, &NetworkError{
			Op:         op,
			URL:        target,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			RequestID:  requestID,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return requestID, &NetworkError{Op: op, URL: target, RequestID: requestID, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return requestID, &ParseError{Op: op, RequestID: requestID, Err: err}
	}

	return requestID, nil
}
