// Package scrape fetches public web pages and reduces them to plain text
// suitable for analysis prompts.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/bizos/backend/internal/infrastructure/config"
)

// Page is the distilled result of fetching a single URL.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Fetcher downloads HTML pages and extracts their visible text.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
	logger    *zap.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithLogger attaches a logger for fetch diagnostics.
func WithLogger(logger *zap.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a Fetcher from the scrape configuration.
func NewFetcher(cfg config.ScrapeConfig, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBody,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the page at rawURL and returns its title and visible text.
// Only http and https URLs are accepted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("url %q has no host", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", parsed.Host, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", parsed.Host, res.StatusCode)
	}

	body := io.LimitReader(res.Body, f.maxBody)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	page := &Page{
		URL:   parsed.String(),
		Title: cleanText(doc.Find("title").First().Text()),
		Text:  extractText(doc),
	}
	if page.Text == "" {
		return nil, fmt.Errorf("page %s contains no extractable text", parsed.Host)
	}

	f.logger.Debug("page fetched",
		zap.String("host", parsed.Host),
		zap.Int("text_length", len(page.Text)))
	return page, nil
}

// extractText strips non-content elements and joins the remaining visible
// text into normalized paragraphs.
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, svg, iframe, head").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var parts []string
	seen := map[string]bool{}
	root.Find("h1, h2, h3, h4, p, li, td, th, blockquote").Each(func(_ int, sel *goquery.Selection) {
		text := cleanText(sel.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		parts = append(parts, text)
	})

	// Pages built entirely from divs yield nothing above; fall back to the
	// whole body text.
	if len(parts) == 0 {
		if text := cleanText(root.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
