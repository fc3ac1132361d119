package scraper

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxDepth bounds the breadth-first link walk from the base URL.
const DefaultMaxDepth = 3

// skipFragments mark links that are not documentation pages.
var skipFragments = []string{"#", "javascript:", "mailto:"}

// queueItem is one pending page in the breadth-first walk.
type queueItem struct {
	url   string
	depth int
}

// DiscoverURLs walks links breadth-first from baseURL up to maxDepth and
// returns every documentation URL found under the base, sorted for
// determinism. Fetch failures on individual pages are logged and skipped;
// discovery only fails when the context is canceled.
func (s *Scraper) DiscoverURLs(ctx context.Context, baseURL string, maxDepth int) ([]string, error) {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}

	discovered := make(map[string]bool)
	visited := make(map[string]bool)
	queue := []queueItem{{url: baseURL, depth: 0}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := queue[0]
		queue = queue[1:]
		if visited[item.url] || item.depth > maxDepth {
			continue
		}
		visited[item.url] = true

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		html, err := s.fetcher.Fetch(ctx, item.url)
		if err != nil {
			s.log.Printf("discover: skipping %s: %v", item.url, err)
			continue
		}

		for _, link := range extractLinks(html, item.url, baseURL) {
			if visited[link] {
				continue
			}
			discovered[link] = true
			if item.depth < maxDepth {
				queue = append(queue, queueItem{url: link, depth: item.depth + 1})
			}
		}
	}

	urls := make([]string, 0, len(discovered))
	for u := range discovered {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls, nil
}

// extractLinks resolves every anchor on the page and keeps the ones under
// the documentation base URL.
func extractLinks(html, pageURL, baseURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		for _, skip := range skipFragments {
			if strings.Contains(href, skip) {
				return
			}
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !strings.HasPrefix(resolved, baseURL) {
			return
		}
		links = append(links, resolved)
	})
	return links
}

// resolveURL makes href absolute against the page it appeared on.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
