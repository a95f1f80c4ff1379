// Package todoist is a minimal client for the Todoist REST API v2.
//
// The client covers the operations tix needs (tasks, projects, labels) and
// forwards filter strings verbatim: translating natural language into filter
// syntax is the job of internal/filter, not this package.
package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the Todoist REST API v2 endpoint.
	DefaultBaseURL = "https://api.todoist.com/rest/v2"

	defaultUserAgent = "tix"
	requestTimeout   = 30 * time.Second
)

// Client talks to the Todoist REST API.
type Client struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	userAgent    string
	newRequestID func() string
}

// Options configures a Client. Zero-value fields fall back to defaults.
type Options struct {
	// Token is the API token. Required.
	Token string

	// BaseURL overrides the API endpoint (used by tests).
	BaseURL string

	// HTTPClient overrides the HTTP client (used by tests).
	HTTPClient *http.Client

	// UserAgent overrides the User-Agent header.
	UserAgent string
}

// New creates a Client.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:      baseURL,
		token:        opts.Token,
		httpClient:   httpClient,
		userAgent:    userAgent,
		newRequestID: uuid.NewString,
	}
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todoist: status %d", e.StatusCode)
	}
	return fmt.Sprintf("todoist: %s (status %d)", e.Message, e.StatusCode)
}

// do performs one API request. Mutating requests carry an X-Request-Id so
// retries are idempotent on the server side.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-Id", c.newRequestID())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call todoist api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
