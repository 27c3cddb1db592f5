// Package dataforseo is a thin typed client for the keyword-metrics provider:
// search-volume lookups, keyword expansion, and SERP snapshots. Responses are
// decoded into explicit envelopes; missing numeric fields default to zero
// rather than failing the stage.
package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the hosted provider endpoint.
const DefaultBaseURL = "https://api.dataforseo.com"

// requestTimeout bounds a single provider call.
const requestTimeout = 90 * time.Second

// API paths for the three lookups.
const (
	searchVolumePath = "/v3/keywords_data/google_ads/search_volume/live"
	expansionPath    = "/v3/keywords_data/google_ads/keywords_for_keywords/live"
	serpPath         = "/v3/serp/google/organic/live/advanced"
)

// Error represents a provider failure carrying the HTTP status when available.
type Error struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dataforseo %s error: %s (status %d)", e.Operation, e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("dataforseo %s error: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataforseo %s error: %s", e.Operation, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Locale selects the market for metric and SERP lookups.
type Locale struct {
	LocationCode int
	LanguageCode string
}

// Client calls the keyword-metrics provider with basic auth.
type Client struct {
	login    string
	password string
	baseURL  string
	client   *http.Client
}

// NewClient creates a provider client. An empty baseURL uses the hosted default.
func NewClient(login, password, baseURL string) (*Client, error) {
	if login == "" || password == "" {
		return nil, fmt.Errorf("dataforseo credentials are required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		login:    login,
		password: password,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: requestTimeout},
	}, nil
}

// post sends a JSON payload and decodes the response envelope into out.
func (c *Client) post(ctx context.Context, operation, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Operation: operation, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &Error{Operation: operation, Message: "failed to create request", Cause: err}
	}
	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Operation: operation, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    "provider returned non-success status",
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Operation: operation, Message: "failed to read response body", Cause: err}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Operation: operation, Message: "malformed provider response", Cause: err}
	}

	return nil
}
