// Package storage provides SQLite-based persistence for scraped documentation.
//
// The storage layer manages:
//   - Documents (one row per scraped page, keyed by URL)
//   - Scrape run metadata
//   - An FTS5 full-text index over titles and content
//
// # Database Schema
//
// Tables:
//   - documents: url (unique), title, content, markdown_content, category,
//     last_scraped
//   - scrape_runs: base URL, page count, and status of full scrape runs
//   - documents_fts: FTS5 index kept in sync by triggers
//
// # Basic Usage
//
//	store, err := storage.NewSQLiteStore("amplify_docs.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.UpsertDocument(ctx, &types.Document{
//	    URL:      "https://docs.amplify.aws/nextjs/start/",
//	    Title:    "Getting started",
//	    Category: types.CategoryGettingStarted,
//	})
//
// # Search
//
// SearchDocuments implements the substring-match contract used by the
// relevance engine: a document matches when its title or content contains any
// match term (case-insensitive), optionally filtered by category. Results
// carry a base score derived from whole-phrase title/URL matches and are
// returned in store order (base score, then recency), which downstream
// ranking uses as the tie-break.
//
// SearchRanked uses the FTS5 index with BM25 ranking and serves keyword-bag
// queries such as pattern lookups.
//
// # Build Tags
//
// Two driver configurations are supported:
//
//   - Default (CGO_ENABLED=0): modernc.org/sqlite, pure Go
//   - cgo_sqlite tag: github.com/mattn/go-sqlite3, requires a C compiler
//
// Both provide FTS5.
package storage
