package storage

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// Base scores assigned by the store. A whole-phrase title match outranks a
// URL match; everything else relies on the engine's boost.
const (
	baseScoreTitleMatch = 10
	baseScoreURLMatch   = 8
)

// SearchDocuments matches any document whose title or content contains any of
// the query terms (case-insensitive substring), optionally filtered by
// category. Results are ordered by base score, then recency; that order is
// the ranking tie-break used downstream.
func (s *SQLiteStore) SearchDocuments(ctx context.Context, q SearchQuery) ([]SearchHit, error) {
	terms := normalizeTerms(q.Terms)
	if len(terms) == 0 {
		return []SearchHit{}, nil
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	conditions := make([]string, 0, len(terms))
	args := make([]interface{}, 0, 2*len(terms)+4)
	for _, term := range terms {
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)")
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern)
	}

	phrase := "%" + strings.ToLower(strings.TrimSpace(q.Phrase)) + "%"

	sqlQuery := `
		SELECT id, url, title, content, markdown_content, category, last_scraped,
		       (CASE
		          WHEN LOWER(title) LIKE ? THEN ` + strconv.Itoa(baseScoreTitleMatch) + `
		          WHEN LOWER(url) LIKE ? THEN ` + strconv.Itoa(baseScoreURLMatch) + `
		          ELSE 0
		        END) AS base_score
		FROM documents
		WHERE (` + strings.Join(conditions, " OR ") + `)
	`
	// Prepend the CASE parameters; they appear before the WHERE placeholders.
	args = append([]interface{}{phrase, phrase}, args...)

	if q.Category != "" {
		sqlQuery += " AND category = ?"
		args = append(args, q.Category)
	}

	sqlQuery += " ORDER BY base_score DESC, last_scraped DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanSearchHits(rows)
}

// SearchRanked queries the FTS5 index with BM25 ranking. Suits keyword-bag
// queries like pattern lookups; terms match at token granularity, not by
// substring.
func (s *SQLiteStore) SearchRanked(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	match := buildFTSQuery(query)
	if match == "" {
		return []SearchHit{}, nil
	}
	if limit < 1 {
		limit = 10
	}

	// In FTS5, rank is a built-in column holding the BM25 score; lower
	// (more negative) values are better matches.
	sqlQuery := `
		SELECT d.id, d.url, d.title, d.content, d.markdown_content, d.category, d.last_scraped,
		       -rank AS base_score
		FROM documents d
		JOIN documents_fts fts ON d.id = fts.rowid
		WHERE documents_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, sqlQuery, match, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanSearchHits(rows)
}

// scanSearchHits reads (document..., base_score) rows into hits.
func scanSearchHits(rows *sql.Rows) ([]SearchHit, error) {
	hits := make([]SearchHit, 0)
	for rows.Next() {
		var doc types.Document
		var markdown sql.NullString
		var category string
		var score float64
		err := rows.Scan(
			&doc.ID, &doc.URL, &doc.Title, &doc.Content,
			&markdown, &category, &doc.LastScraped, &score,
		)
		if err != nil {
			return nil, err
		}
		doc.MarkdownContent = markdown.String
		doc.Category = types.Category(category)
		hits = append(hits, SearchHit{Document: &doc, BaseScore: score})
	}
	return hits, rows.Err()
}

// normalizeTerms lowercases, trims, and deduplicates terms, dropping empties.
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// buildFTSQuery converts free text into an OR-joined FTS5 match expression.
// Each token is double-quoted so punctuation in queries cannot break the
// FTS syntax.
func buildFTSQuery(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, "")
		if f == "" {
			continue
		}
		quoted = append(quoted, `"`+f+`"`)
	}
	return strings.Join(quoted, " OR ")
}
