// Package types provides shared type definitions for the Amplify docs MCP server.
//
// It defines the domain types used across components: documents and their
// categories, query intents, anti-pattern warnings, scored search results,
// and index statistics.
//
// # Core Types
//
// Document represents one scraped documentation page, keyed by URL:
//
//	doc := &types.Document{
//	    URL:      "https://docs.amplify.aws/nextjs/build-a-backend/auth/",
//	    Title:    "Set up Amplify Auth",
//	    Category: types.CategoryBackend,
//	}
//
// ScoredResult pairs a document with its combined relevance score:
//
//	result := types.ScoredResult{
//	    Document: doc,
//	    Score:    18,
//	    BoostReasons: []string{"category affinity: backend"},
//	}
//
// Categories form a fixed enumeration assigned at scrape time from the URL
// path. Intents are ephemeral classifications of a caller's query, computed
// per request and never persisted.
package types
