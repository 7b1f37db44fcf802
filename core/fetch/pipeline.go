// Package fetch enriches canonical links with article content, filling the
// content cache from a scraper while skipping denylisted hosts.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/time/rate"

	"sync-bookmarks/core/domain"
	coreerrors "sync-bookmarks/core/errors"
	"sync-bookmarks/core/interfaces"
)

const (
	// FinishMessage is shown when a fetch run completes.
	FinishMessage = "Done!"
	// AbortMessage is shown when a fetch run stops on an error.
	AbortMessage = "Aborted"
)

// Config controls a Pipeline.
type Config struct {
	// BannedHosts are never scraped. Entries are compared after normalization.
	BannedHosts []string
	// Verbose logs every failed scrape.
	Verbose bool
	// RatePerSecond caps scrape starts; zero or less means no limit.
	RatePerSecond float64
}

// Result reports what a fetch run did.
type Result struct {
	Total   int
	Banned  int
	Cached  int
	Fetched int
	Failed  int
}

// Summary renders the result as a one-line human readable message.
func (r Result) Summary() string {
	return fmt.Sprintf("Processed %d links: %d fetched, %d already cached, %d banned, %d failed",
		r.Total, r.Fetched, r.Cached, r.Banned, r.Failed)
}

// Pipeline walks the canonical links and caches the article of each one.
type Pipeline struct {
	cache    interfaces.ContentCache
	scraper  interfaces.Scraper
	progress interfaces.Progress
	logger   interfaces.Logger

	banned  map[string]struct{}
	verbose bool
	limiter *rate.Limiter
}

// NewPipeline creates a pipeline over the given collaborators.
func NewPipeline(cfg Config, cache interfaces.ContentCache, scraper interfaces.Scraper, progress interfaces.Progress, logger interfaces.Logger) *Pipeline {
	banned := make(map[string]struct{}, len(cfg.BannedHosts))
	for _, host := range cfg.BannedHosts {
		if normalized := NormalizeHost(host); normalized != "" {
			banned[normalized] = struct{}{}
		}
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &Pipeline{
		cache:    cache,
		scraper:  scraper,
		progress: progress,
		logger:   logger,
		banned:   banned,
		verbose:  cfg.Verbose,
		limiter:  limiter,
	}
}

// NormalizeHost lowercases host, drops a trailing dot and converts it to its
// ASCII (punycode) form. Hosts idna rejects are only lowercased.
func NormalizeHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host == "" {
		return ""
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}

// IsBanned reports whether the host of rawURL is in the denylist.
// URLs without a parseable host are never banned.
func (p *Pipeline) IsBanned(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := NormalizeHost(parsed.Hostname())
	if host == "" {
		return false
	}
	_, banned := p.banned[host]
	return banned
}

// RunStore loads the canonical links from store and runs the pipeline over them.
func (p *Pipeline) RunStore(ctx context.Context, store interfaces.LinkStorage) (Result, error) {
	links, err := store.Load()
	if err != nil {
		return Result{}, fmt.Errorf("failed to load link store: %w", err)
	}
	return p.Run(ctx, links)
}

// Run processes links in order. A failed scrape or a URL the cache rejects
// skips that link; any other cache error or a cancelled context stops the run.
func (p *Pipeline) Run(ctx context.Context, links []domain.SerializedLink) (Result, error) {
	result := Result{Total: len(links)}
	p.progress.Start("Fetching links", len(links))

	if err := p.runAll(ctx, links, &result); err != nil {
		p.progress.Finish(AbortMessage)
		return result, err
	}

	p.progress.Finish(FinishMessage)
	p.logger.Info("Fetch finished", map[string]interface{}{
		"total":   result.Total,
		"banned":  result.Banned,
		"cached":  result.Cached,
		"fetched": result.Fetched,
		"failed":  result.Failed,
	})
	return result, nil
}

func (p *Pipeline) runAll(ctx context.Context, links []domain.SerializedLink, result *Result) error {
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := p.process(ctx, link)
		if err != nil {
			return err
		}
		switch outcome {
		case outcomeBanned:
			result.Banned++
		case outcomeCached:
			result.Cached++
		case outcomeFetched:
			result.Fetched++
		case outcomeFailed:
			result.Failed++
		}
		p.progress.Increment()
	}
	return nil
}

type outcome int

const (
	outcomeBanned outcome = iota
	outcomeCached
	outcomeFetched
	outcomeFailed
)

func (p *Pipeline) process(ctx context.Context, link domain.SerializedLink) (outcome, error) {
	if p.IsBanned(link.URL) {
		p.logger.Debug("Skipping banned host", map[string]interface{}{"url": link.URL})
		return outcomeBanned, nil
	}

	cached, err := p.cache.Query(ctx, link.URL)
	if coreerrors.IsValidation(err) {
		return p.fail(link, err), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query cache for %s: %w", link.URL, err)
	}
	if cached != nil {
		return outcomeCached, nil
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return 0, err
		}
	}

	article, err := p.scraper.Scrape(ctx, link.URL)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		if !coreerrors.IsScrape(err) {
			err = &coreerrors.ScrapeError{URL: link.URL, Err: err}
		}
		return p.fail(link, err), nil
	}

	err = p.cache.Insert(ctx, domain.NewCachedLink(link, article))
	if coreerrors.IsValidation(err) {
		return p.fail(link, err), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to cache %s: %w", link.URL, err)
	}
	return outcomeFetched, nil
}

// fail logs a per-link failure when verbose
func (p *Pipeline) fail(link domain.SerializedLink, err error) outcome {
	if p.verbose {
		p.logger.Warn(err.Error(), map[string]interface{}{"url": link.URL})
	}
	return outcomeFailed
}
