// Package ingestion fetches a job posting page, extracts its readable text,
// and asks the generation service to lift the structured job description
// fields out of it. It backs the optional --job-url path.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the tool to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; JobAssistant/1.0)"

// postingSelectors are tried in order to locate the posting content before
// falling back to the whole body.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// noiseSelector matches elements stripped before text extraction.
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, form, .ad, .ads, .sidebar, .cookie-banner, .popup"

// FetchPostingText retrieves a job posting URL and returns its cleaned
// readable text.
func FetchPostingText(ctx context.Context, urlStr string) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := extractMainText(html)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &FetchError{URL: urlStr, Message: "page contained no readable text"}
	}

	return cleaned, nil
}

// fetchHTML retrieves raw HTML from a URL.
func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// extractMainText parses HTML and returns the posting body text, preferring
// job-board content containers over the raw body.
func extractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return content.Text(), nil
}
