package storage

import (
	"context"
	"time"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// SearchQuery describes a substring-match query against the document store.
type SearchQuery struct {
	// Terms match any document whose title or content contains any of them
	// (case-insensitive substring).
	Terms []string
	// Phrase is the caller's original query; whole-phrase title and URL
	// matches earn the base relevance score.
	Phrase string
	// Category optionally restricts results. Unknown values simply match
	// nothing; they are not an error.
	Category string
	Limit    int
}

// SearchHit pairs a matched document with its store-assigned base score.
type SearchHit struct {
	Document  *types.Document
	BaseScore float64
}

// ScrapeRun records one full scrape of the documentation site.
type ScrapeRun struct {
	ID         int64
	BaseURL    string
	TotalPages int
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Scrape run status values.
const (
	ScrapeStatusInProgress = "in_progress"
	ScrapeStatusCompleted  = "completed"
	ScrapeStatusFailed     = "failed"
)

// Store defines the interface for persisting and querying scraped documents
type Store interface {
	// Document operations
	UpsertDocument(ctx context.Context, doc *types.Document) error
	GetDocument(ctx context.Context, url string) (*types.Document, error)
	ListDocuments(ctx context.Context) ([]*types.Document, error)
	DeleteDocument(ctx context.Context, url string) error

	// Search operations
	SearchDocuments(ctx context.Context, q SearchQuery) ([]SearchHit, error)
	SearchRanked(ctx context.Context, query string, limit int) ([]SearchHit, error)

	// Category and stats operations
	ListCategories(ctx context.Context) ([]types.Category, error)
	GetStats(ctx context.Context) (*types.Stats, error)

	// Scrape run operations
	BeginScrapeRun(ctx context.Context, baseURL string) (*ScrapeRun, error)
	FinishScrapeRun(ctx context.Context, runID int64, totalPages int, status string) error
	LatestScrapeRun(ctx context.Context) (*ScrapeRun, error)

	// Database operations
	Close() error
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx represents a database transaction
type Tx interface {
	Commit() error
	Rollback() error

	UpsertDocument(ctx context.Context, doc *types.Document) error
	GetDocument(ctx context.Context, url string) (*types.Document, error)
	DeleteDocument(ctx context.Context, url string) error
}
