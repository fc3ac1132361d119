package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStore creates a new SQLite store instance
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction
func (s *SQLiteStore) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &sqliteTx{tx: tx, store: s}, nil
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqliteTx wraps a SQL transaction
type sqliteTx struct {
	tx    *sql.Tx
	store *SQLiteStore
}

func (t *sqliteTx) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}

// Document operations

// upsertDocumentWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStore) upsertDocumentWithQuerier(ctx context.Context, q querier, doc *types.Document) error {
	query := `
		INSERT INTO documents (url, title, content, markdown_content, category, last_scraped)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			markdown_content = excluded.markdown_content,
			category = excluded.category,
			last_scraped = excluded.last_scraped
		RETURNING id
	`
	now := time.Now()
	if doc.LastScraped.IsZero() {
		doc.LastScraped = now
	}
	err := q.QueryRowContext(ctx, query,
		doc.URL, doc.Title, doc.Content, doc.MarkdownContent,
		string(doc.Category), doc.LastScraped).Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) UpsertDocument(ctx context.Context, doc *types.Document) error {
	return s.upsertDocumentWithQuerier(ctx, s.db, doc)
}

// getDocumentWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStore) getDocumentWithQuerier(ctx context.Context, q querier, url string) (*types.Document, error) {
	query := `
		SELECT id, url, title, content, markdown_content, category, last_scraped
		FROM documents
		WHERE url = ?
	`
	var doc types.Document
	var markdown sql.NullString
	var category string
	err := q.QueryRowContext(ctx, query, url).Scan(
		&doc.ID, &doc.URL, &doc.Title, &doc.Content,
		&markdown, &category, &doc.LastScraped,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.MarkdownContent = markdown.String
	doc.Category = types.Category(category)
	return &doc, nil
}

func (s *SQLiteStore) GetDocument(ctx context.Context, url string) (*types.Document, error) {
	return s.getDocumentWithQuerier(ctx, s.db, url)
}

// deleteDocumentWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStore) deleteDocumentWithQuerier(ctx context.Context, q querier, url string) error {
	result, err := q.ExecContext(ctx, `DELETE FROM documents WHERE url = ?`, url)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteDocument(ctx context.Context, url string) error {
	return s.deleteDocumentWithQuerier(ctx, s.db, url)
}

// ListDocuments returns all documents ordered by category, then title.
func (s *SQLiteStore) ListDocuments(ctx context.Context) ([]*types.Document, error) {
	query := `
		SELECT id, url, title, content, markdown_content, category, last_scraped
		FROM documents
		ORDER BY category, title
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanDocuments(rows)
}

// scanDocuments reads document rows into a slice.
func scanDocuments(rows *sql.Rows) ([]*types.Document, error) {
	docs := make([]*types.Document, 0)
	for rows.Next() {
		var doc types.Document
		var markdown sql.NullString
		var category string
		err := rows.Scan(
			&doc.ID, &doc.URL, &doc.Title, &doc.Content,
			&markdown, &category, &doc.LastScraped,
		)
		if err != nil {
			return nil, err
		}
		doc.MarkdownContent = markdown.String
		doc.Category = types.Category(category)
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// Category and stats operations

// ListCategories returns the distinct categories present in the index.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]types.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM documents ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	categories := make([]types.Category, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, types.Category(c))
	}
	return categories, rows.Err()
}

// GetStats returns index statistics
func (s *SQLiteStore) GetStats(ctx context.Context) (*types.Stats, error) {
	stats := &types.Stats{
		ByCategory: make(map[types.Category]int),
	}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&stats.TotalDocuments)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM documents
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		stats.ByCategory[types.Category(category)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var lastUpdate sql.NullTime
	err = s.db.QueryRowContext(ctx, `SELECT MAX(last_scraped) FROM documents`).Scan(&lastUpdate)
	if err != nil {
		return nil, err
	}
	if lastUpdate.Valid {
		stats.LastUpdate = lastUpdate.Time
	}

	return stats, nil
}

// Scrape run operations

func (s *SQLiteStore) BeginScrapeRun(ctx context.Context, baseURL string) (*ScrapeRun, error) {
	query := `
		INSERT INTO scrape_runs (base_url, status, started_at)
		VALUES (?, ?, ?)
		RETURNING id
	`
	run := &ScrapeRun{
		BaseURL:   baseURL,
		Status:    ScrapeStatusInProgress,
		StartedAt: time.Now(),
	}
	err := s.db.QueryRowContext(ctx, query, run.BaseURL, run.Status, run.StartedAt).Scan(&run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin scrape run: %w", err)
	}
	return run, nil
}

func (s *SQLiteStore) FinishScrapeRun(ctx context.Context, runID int64, totalPages int, status string) error {
	query := `
		UPDATE scrape_runs
		SET total_pages = ?, status = ?, finished_at = ?
		WHERE id = ?
	`
	_, err := s.db.ExecContext(ctx, query, totalPages, status, time.Now(), runID)
	if err != nil {
		return fmt.Errorf("failed to finish scrape run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LatestScrapeRun(ctx context.Context) (*ScrapeRun, error) {
	query := `
		SELECT id, base_url, total_pages, status, started_at, finished_at
		FROM scrape_runs
		ORDER BY started_at DESC
		LIMIT 1
	`
	var run ScrapeRun
	var finishedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query).Scan(
		&run.ID, &run.BaseURL, &run.TotalPages, &run.Status,
		&run.StartedAt, &finishedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}
	return &run, nil
}

// Transaction implementations delegate to the internal querier helpers

func (t *sqliteTx) UpsertDocument(ctx context.Context, doc *types.Document) error {
	return t.store.upsertDocumentWithQuerier(ctx, t.tx, doc)
}

func (t *sqliteTx) GetDocument(ctx context.Context, url string) (*types.Document, error) {
	return t.store.getDocumentWithQuerier(ctx, t.tx, url)
}

func (t *sqliteTx) DeleteDocument(ctx context.Context, url string) error {
	return t.store.deleteDocumentWithQuerier(ctx, t.tx, url)
}
