// ABOUTME: Scraper that downloads a page and extracts its readable article with go-readability
// ABOUTME: Falls back to the page's first heading through goquery when readability finds no title

package readability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

// maxBodyBytes caps how much of a page is read
const maxBodyBytes = 10 << 20

// Scraper implements interfaces.Scraper
type Scraper struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewScraper creates a scraper that downloads pages through httpClient
func NewScraper(httpClient interfaces.HTTPClient, logger interfaces.Logger) *Scraper {
	return &Scraper{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Scrape downloads rawURL and returns its title and plain text content.
// Every failure is returned as a *errors.ScrapeError.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (domain.Article, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return domain.Article{}, &coreerrors.ScrapeError{URL: rawURL, Err: err}
	}

	resp, err := s.httpClient.Get(ctx, rawURL)
	if err != nil {
		return domain.Article{}, &coreerrors.ScrapeError{URL: rawURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return domain.Article{}, &coreerrors.ScrapeError{
			URL: rawURL,
			Err: &coreerrors.ExternalAPIError{
				StatusCode: resp.StatusCode(),
				Message:    http.StatusText(resp.StatusCode()),
				API:        pageURL.Host,
			},
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return domain.Article{}, &coreerrors.ScrapeError{URL: rawURL, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return domain.Article{}, &coreerrors.ScrapeError{URL: rawURL, Err: err}
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = headingTitle(body)
	}

	if s.logger != nil {
		s.logger.Debug("Extracted article", map[string]interface{}{
			"url":   rawURL,
			"title": title,
			"chars": len(article.TextContent),
		})
	}

	return domain.Article{
		Title:       title,
		TextContent: article.TextContent,
	}, nil
}

// headingTitle returns the first non-empty h1, then h2, of the page
func headingTitle(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	for _, selector := range []string{"h1", "h2"} {
		title := ""
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			title = strings.Join(strings.Fields(sel.Text()), " ")
			return title == ""
		})
		if title != "" {
			return title
		}
	}
	return ""
}

var _ interfaces.Scraper = (*Scraper)(nil)
