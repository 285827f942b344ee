package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client wraps HTTP calls to the gallery server.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		logger:  slog.New(slog.DiscardHandler),
		metrics: NewMetrics(),
	}
}

// SetCredentials sets the basic auth pair sent with every request.
func (c *Client) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

// WithLogger sets the logger used for request tracing.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// BaseURL returns the server root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Metrics returns the request metrics collected by this client.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// SearchURL builds the gallery search page URL for a query.
func (c *Client) SearchURL(query string) string {
	return c.baseURL + "/search?" + url.Values{"query": {query}}.Encode()
}

// StatusError is returned for any response other than 200 OK.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	text := strings.TrimSpace(strings.TrimPrefix(e.Status, fmt.Sprintf("%d", e.StatusCode)))
	if text == "" {
		text = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("failed: %d %s", e.StatusCode, text)
}

// do executes an HTTP request and returns the raw response body.
func (c *Client) do(endpoint, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Cache-Control", "no-store")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(started)
	if err != nil {
		c.metrics.observe(endpoint, outcomeTransport, elapsed)
		c.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", elapsed,
		"request_id", requestID,
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(endpoint, outcomeTransport, elapsed)
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.metrics.observe(endpoint, outcomeStatus, elapsed)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	c.metrics.observe(endpoint, outcomeOK, elapsed)
	return respBody, nil
}

// get performs a GET request.
func (c *Client) get(endpoint, path string) ([]byte, error) {
	return c.do(endpoint, http.MethodGet, path, nil)
}

// post performs a POST request.
func (c *Client) post(endpoint, path string, body any) ([]byte, error) {
	return c.do(endpoint, http.MethodPost, path, body)
}

// decodeList decodes a bare JSON array response.
func decodeList[T any](data []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// buildQuery appends query params to a path.
func buildQuery(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return path + "?" + q.Encode()
}
