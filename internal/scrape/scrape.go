// Package scrape retrieves and cleans the content of the target website.
// The primary path is a hosted scrape service; a direct HTTP fetch with
// optional headless-browser rendering serves as fallback when no service
// key is configured.
package scrape

import (
	"context"
	"fmt"
)

// Result holds the scraped page content used for keyword generation.
type Result struct {
	URL         string
	Title       string
	Description string
	// Content is the main page text (markdown-like from the scrape service,
	// plain text from the direct-fetch fallback).
	Content string
}

// Error represents a failure while scraping a URL.
type Error struct {
	URL        string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scrape error for %s: %s (status %d)", e.URL, e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Scraper fetches a page and returns its title, description, and main text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Result, error)
}
