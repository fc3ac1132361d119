package scraper

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// WriteMarkdownFile writes the document as a Markdown file with a metadata
// front-matter block, under a per-category subdirectory of dir. The filename
// derives from the URL path with slashes flattened to underscores.
func WriteMarkdownFile(doc *types.Document, dir string) error {
	categoryDir := filepath.Join(dir, string(doc.Category))
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(categoryDir, markdownFilename(doc.URL))

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", doc.Title)
	fmt.Fprintf(&b, "url: %s\n", doc.URL)
	fmt.Fprintf(&b, "category: %s\n", doc.Category)
	fmt.Fprintf(&b, "last_scraped: %s\n", doc.LastScraped.Format(time.RFC3339))
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "Source: [%s](%s)\n\n", doc.URL, doc.URL)
	b.WriteString(doc.MarkdownContent)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// markdownFilename flattens the URL path into a safe filename.
func markdownFilename(rawURL string) string {
	name := "index"
	if u, err := url.Parse(rawURL); err == nil {
		p := strings.Trim(u.Path, "/")
		if p != "" {
			name = strings.ReplaceAll(p, "/", "_")
		}
	}
	return name + ".md"
}
