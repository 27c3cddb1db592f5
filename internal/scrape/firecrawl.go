package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultFirecrawlEndpoint is the hosted scrape-service endpoint.
const DefaultFirecrawlEndpoint = "https://api.firecrawl.dev/v1/scrape"

// firecrawlTimeout bounds a single scrape request.
const firecrawlTimeout = 60 * time.Second

// FirecrawlClient calls the hosted scrape service.
type FirecrawlClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewFirecrawlClient creates a scrape-service client. An empty endpoint uses
// the hosted default.
func NewFirecrawlClient(apiKey, endpoint string) (*FirecrawlClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("scrape service API key is required")
	}
	if endpoint == "" {
		endpoint = DefaultFirecrawlEndpoint
	}
	return &FirecrawlClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: firecrawlTimeout},
	}, nil
}

// firecrawlRequest is the scrape-service request payload.
type firecrawlRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	IncludeTags     []string `json:"includeTags"`
	ExcludeTags     []string `json:"excludeTags"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	WaitFor         int      `json:"waitFor"`
}

// firecrawlResponse is the scrape-service response envelope.
type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"metadata"`
	} `json:"data"`
}

// Scrape fetches the page through the scrape service. A non-2xx status or a
// success=false payload is a hard failure for the run.
func (c *FirecrawlClient) Scrape(ctx context.Context, url string) (*Result, error) {
	payload := firecrawlRequest{
		URL:             url,
		Formats:         []string{"markdown"},
		IncludeTags:     []string{"title", "meta", "h1", "h2", "h3", "p"},
		ExcludeTags:     []string{"script", "style", "nav", "footer", "code", "pre"},
		OnlyMainContent: true,
		WaitFor:         2000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{URL: url, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    "scrape service returned non-success status",
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: url, Message: "failed to read response body", Cause: err}
	}

	var decoded firecrawlResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &Error{URL: url, Message: "malformed scrape response", Cause: err}
	}

	if !decoded.Success {
		return nil, &Error{URL: url, Message: "failed to scrape website, check the URL and try again"}
	}

	return &Result{
		URL:         url,
		Title:       decoded.Data.Metadata.Title,
		Description: decoded.Data.Metadata.Description,
		Content:     decoded.Data.Markdown,
	}, nil
}
