package scraper

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

const (
	// DefaultRequestsPerSecond keeps the crawl polite; two pages a second
	// matches the cadence the docs site comfortably serves.
	DefaultRequestsPerSecond = 2.0

	// DefaultConcurrency bounds concurrent page fetches.
	DefaultConcurrency = 4
)

// Scraper crawls the documentation site and fills the store.
type Scraper struct {
	fetcher   *Fetcher
	converter *Converter
	store     storage.Store
	limiter   *rate.Limiter
	log       *log.Logger

	concurrency int
	maxDepth    int
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f *Fetcher) Option {
	return func(s *Scraper) { s.fetcher = f }
}

// WithRequestsPerSecond sets the politeness rate limit for all fetches,
// discovery included.
func WithRequestsPerSecond(rps float64) Option {
	return func(s *Scraper) { s.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithConcurrency bounds how many pages are fetched at once.
func WithConcurrency(n int) Option {
	return func(s *Scraper) { s.concurrency = n }
}

// WithMaxDepth bounds link discovery from the base URL.
func WithMaxDepth(n int) Option {
	return func(s *Scraper) { s.maxDepth = n }
}

// WithLogger sets the progress logger. Defaults to the standard logger,
// which the server points at stderr.
func WithLogger(l *log.Logger) Option {
	return func(s *Scraper) { s.log = l }
}

// New creates a Scraper writing into store.
func New(store storage.Store, opts ...Option) *Scraper {
	s := &Scraper{
		store:       store,
		converter:   NewConverter(),
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		log:         log.Default(),
		concurrency: DefaultConcurrency,
		maxDepth:    DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fetcher == nil {
		s.fetcher = NewFetcher()
	}
	return s
}

// RunOptions controls one scrape run.
type RunOptions struct {
	BaseURL string
	// ForceRefresh re-scrapes even when the index is already populated.
	ForceRefresh bool
	// MarkdownDir, when set, also writes each page as a Markdown file
	// under a per-category subdirectory.
	MarkdownDir string
}

// Result summarizes one scrape run.
type Result struct {
	RunID      int64
	Discovered int
	Scraped    int
	Errors     int
	Skipped    bool
}

// Run discovers documentation URLs and scrapes each into the store. When the
// index already holds documents and ForceRefresh is false, the run is
// skipped. A run is recorded in the store either way except when skipped.
func (s *Scraper) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if !opts.ForceRefresh {
		stats, err := s.store.GetStats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check index state: %w", err)
		}
		if stats.TotalDocuments > 0 {
			s.log.Printf("index already holds %d documents, skipping scrape", stats.TotalDocuments)
			return &Result{Skipped: true}, nil
		}
	}

	run, err := s.store.BeginScrapeRun(ctx, opts.BaseURL)
	if err != nil {
		return nil, err
	}

	result, err := s.scrapeAll(ctx, opts)
	if err != nil {
		_ = s.store.FinishScrapeRun(ctx, run.ID, 0, storage.ScrapeStatusFailed)
		return nil, err
	}
	result.RunID = run.ID

	if err := s.store.FinishScrapeRun(ctx, run.ID, result.Scraped, storage.ScrapeStatusCompleted); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scraper) scrapeAll(ctx context.Context, opts RunOptions) (*Result, error) {
	urls, err := s.DiscoverURLs(ctx, opts.BaseURL, s.maxDepth)
	if err != nil {
		return nil, fmt.Errorf("URL discovery failed: %w", err)
	}
	s.log.Printf("discovered %d documentation pages", len(urls))

	var scraped, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, u := range urls {
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return err
			}
			if err := s.scrapePage(gctx, u, opts.MarkdownDir); err != nil {
				s.log.Printf("scrape: %s: %v", u, err)
				failed.Add(1)
				return nil
			}
			scraped.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Printf("scrape finished: %d pages stored, %d errors", scraped.Load(), failed.Load())
	return &Result{
		Discovered: len(urls),
		Scraped:    int(scraped.Load()),
		Errors:     int(failed.Load()),
	}, nil
}

// scrapePage fetches one page, extracts and converts it, and upserts the
// document.
func (s *Scraper) scrapePage(ctx context.Context, pageURL, markdownDir string) error {
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return err
	}

	page, err := ExtractPage(html)
	if err != nil {
		return fmt.Errorf("content extraction failed: %w", err)
	}

	markdown, err := s.converter.Convert(page.ContentHTML)
	if err != nil {
		return fmt.Errorf("markdown conversion failed: %w", err)
	}

	doc := &types.Document{
		URL:             pageURL,
		Title:           page.Title,
		Content:         page.Text,
		MarkdownContent: markdown,
		Category:        CategorizeURL(pageURL),
		LastScraped:     time.Now(),
	}
	if err := s.store.UpsertDocument(ctx, doc); err != nil {
		return err
	}

	if markdownDir != "" {
		if err := WriteMarkdownFile(doc, markdownDir); err != nil {
			return fmt.Errorf("markdown export failed: %w", err)
		}
	}
	return nil
}
