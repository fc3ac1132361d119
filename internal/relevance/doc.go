// Package relevance implements the ranked-search heuristics layered on top
// of the document store: intent classification, query expansion, anti-pattern
// detection, and additive relevance boosting.
//
// All lookup tables (intent keywords, expansion map, anti-pattern rules,
// intent to category affinity) are immutable package-level data, read-only
// after initialization. The only mutable state is the struggling-user
// Tracker, which is owned by the Engine and safe for concurrent use.
//
// Usage:
//
//	engine := relevance.NewEngine(store, relevance.NewTracker())
//	resp, err := engine.Search(ctx, relevance.SearchRequest{
//		Query: "how do I set up auth",
//		Limit: 10,
//	})
//
// The engine never partially ranks: if the store query fails, the error is
// surfaced as ErrSearchUnavailable and no results are returned.
package relevance
