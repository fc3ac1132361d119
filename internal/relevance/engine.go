package relevance

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// ErrSearchUnavailable wraps a store-query failure. The engine never ranks a
// partial result set; callers get this error and no results.
var ErrSearchUnavailable = errors.New("search unavailable")

const (
	defaultLimit    = 10
	defaultCacheTTL = 5 * time.Minute
	cacheSize       = 1000
)

// SearchRequest contains parameters for one search operation.
type SearchRequest struct {
	Query    string
	Category string
	Limit    int
	Context  *types.SearchContext
	CacheTTL time.Duration
}

// cacheEntry holds a cached ranking with its expiration time. Suggestions
// are never cached; the tracker is consulted fresh on every call.
type cacheEntry struct {
	intent    types.Intent
	warnings  []types.Warning
	results   []types.ScoredResult
	expiresAt time.Time
}

// Engine ranks store search results using the intent, expansion, and
// anti-pattern tables in this package.
type Engine struct {
	store   storage.Store
	tracker *Tracker
	cache   *lru.Cache[[32]byte, *cacheEntry]
	cacheMu sync.RWMutex
}

// NewEngine creates a relevance engine over the given store. The tracker is
// injected so tests can assert eviction behavior on isolated instances.
func NewEngine(store storage.Store, tracker *Tracker) *Engine {
	cache, err := lru.New[[32]byte, *cacheEntry](cacheSize)
	if err != nil {
		// Only possible with a non-positive size parameter
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	return &Engine{
		store:   store,
		tracker: tracker,
		cache:   cache,
	}
}

// Search classifies the query, expands its terms, queries the store, and
// returns warnings plus results ranked by combined score. An empty query is
// accepted and degrades to general intent with no matches. Every call
// records one hit/miss outcome on the tracker, including cache hits.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*types.SearchResponse, error) {
	query := strings.TrimSpace(req.Query)
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}
	if req.CacheTTL == 0 {
		req.CacheTTL = defaultCacheTTL
	}

	key := cacheKey(query, req.Category, req.Limit, req.Context)
	if entry := e.checkCache(key); entry != nil {
		return e.finishSearch(entry.intent, entry.warnings, entry.results), nil
	}

	intent := ClassifyIntent(query)
	terms := ExpandQuery(query, intent)
	warnings := DetectAntiPatterns(query, req.Context)

	hits, err := e.store.SearchDocuments(ctx, storage.SearchQuery{
		Terms:    terms,
		Phrase:   query,
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	results := rankHits(hits, intent, terms)
	e.storeInCache(key, &cacheEntry{
		intent:    intent,
		warnings:  warnings,
		results:   results,
		expiresAt: time.Now().Add(req.CacheTTL),
	})

	return e.finishSearch(intent, warnings, results), nil
}

// finishSearch records the outcome and assembles the response, appending the
// struggling-user suggestions when the tracker fires.
func (e *Engine) finishSearch(intent types.Intent, warnings []types.Warning, results []types.ScoredResult) *types.SearchResponse {
	e.tracker.Record(len(results) > 0)

	resp := &types.SearchResponse{
		Intent:   intent,
		Warnings: warnings,
		Results:  results,
	}
	if e.tracker.Struggling() {
		resp.Suggestions = strugglingSuggestions()
	}
	return resp
}

// rankHits scores every hit and orders by combined score descending. The
// sort is stable so equal scores keep the store's order as the tie-break.
func rankHits(hits []storage.SearchHit, intent types.Intent, terms []string) []types.ScoredResult {
	results := make([]types.ScoredResult, 0, len(hits))
	for _, hit := range hits {
		boost, reasons := ScoreDocument(hit.Document, intent, terms)
		results = append(results, types.ScoredResult{
			Document:     hit.Document,
			BaseScore:    hit.BaseScore,
			Boost:        boost,
			BoostReasons: reasons,
			Highlighted:  boost >= HighlightThreshold,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})
	return results
}

// strugglingSuggestions is the extra guidance block appended after three
// consecutive empty searches.
func strugglingSuggestions() []string {
	return []string{
		"Browse available topics with the list_categories tool.",
		"Try find_patterns for complete auth, data, and storage examples.",
		"Search for specific API names such as defineAuth or a.model.",
		"Restrict by category, for example category=getting-started.",
	}
}

func cacheKey(query, category string, limit int, sctx *types.SearchContext) [32]byte {
	var file, lastErr string
	if sctx != nil {
		file = sctx.CurrentFile
		lastErr = sctx.LastError
	}
	return sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s|%s", query, category, limit, file, lastErr)))
}

func (e *Engine) checkCache(key [32]byte) *cacheEntry {
	now := time.Now()

	e.cacheMu.RLock()
	entry, found := e.cache.Get(key)
	e.cacheMu.RUnlock()
	if !found {
		return nil
	}
	if now.After(entry.expiresAt) {
		e.cacheMu.Lock()
		e.cache.Remove(key)
		e.cacheMu.Unlock()
		return nil
	}
	return entry
}

func (e *Engine) storeInCache(key [32]byte, entry *cacheEntry) {
	e.cacheMu.Lock()
	e.cache.Add(key, entry)
	e.cacheMu.Unlock()
}
