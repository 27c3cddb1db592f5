package scrape

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout for direct fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for direct fetches.
const DefaultUserAgent = "Mozilla/5.0 (compatible; KeywordScout/1.0)"

// LocalScraper fetches the page directly and extracts its main text with a
// DOM query, bypassing the hosted scrape service. Used when no service key is
// configured. With UseBrowser set, pages whose static HTML yields too little
// text are re-rendered in a headless browser.
type LocalScraper struct {
	UserAgent  string
	Timeout    time.Duration
	UseBrowser bool
	Verbose    bool
}

// NewLocalScraper returns a LocalScraper with default fetch settings.
func NewLocalScraper(useBrowser, verbose bool) *LocalScraper {
	return &LocalScraper{
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
		UseBrowser: useBrowser,
		Verbose:    verbose,
	}
}

// Scrape fetches the URL and extracts title, meta description, and main text.
func (s *LocalScraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	html, statusCode, err := s.fetchHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, &Error{URL: rawURL, StatusCode: statusCode, Message: "HTTP status not OK"}
	}

	result, err := extractResult(rawURL, html)
	if err != nil {
		return nil, err
	}

	// Static HTML with almost no text usually means a JS-rendered page.
	if s.UseBrowser && ShouldUseBrowser(result.Content) {
		rendered, berr := renderWithBrowser(ctx, rawURL, s.Timeout*2, s.Verbose)
		if berr == nil {
			if renderedResult, rerr := extractResult(rawURL, rendered); rerr == nil {
				return renderedResult, nil
			}
		}
	}

	return result, nil
}

// fetchHTML performs the raw HTTP GET.
func (s *LocalScraper) fetchHTML(ctx context.Context, rawURL string) (string, int, error) {
	client := &http.Client{Timeout: s.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, &Error{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	return string(body), resp.StatusCode, nil
}

// extractResult parses HTML into a scrape Result.
func extractResult(rawURL, html string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to parse HTML", Cause: err}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	description, _ := doc.Find(`meta[name="description"]`).First().Attr("content")

	// Remove noise elements before extracting text.
	doc.Find("nav, footer, header, script, style, noscript, code, pre, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return &Result{
		URL:         rawURL,
		Title:       title,
		Description: strings.TrimSpace(description),
		Content:     cleanWhitespace(mainContent.Text()),
	}, nil
}

// contentSelectors returns selectors tried in order for the main content block.
func contentSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// cleanWhitespace normalizes whitespace in extracted text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
