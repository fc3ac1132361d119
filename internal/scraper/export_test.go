package scraper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func TestWriteMarkdownFile(t *testing.T) {
	dir := t.TempDir()

	doc := &types.Document{
		URL:             "https://docs.example.com/start/quickstart/",
		Title:           "Quickstart",
		MarkdownContent: "## Install\n\nRun the installer.",
		Category:        types.CategoryGettingStarted,
		LastScraped:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, WriteMarkdownFile(doc, dir))

	path := filepath.Join(dir, "getting-started", "start_quickstart.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "title: Quickstart\n")
	assert.Contains(t, content, "category: getting-started\n")
	assert.Contains(t, content, "last_scraped: 2026-03-01T12:00:00Z\n")
	assert.Contains(t, content, "# Quickstart\n")
	assert.Contains(t, content, "## Install")
}

func TestMarkdownFilename(t *testing.T) {
	assert.Equal(t, "start_quickstart.md", markdownFilename("https://d.example/start/quickstart/"))
	assert.Equal(t, "index.md", markdownFilename("https://d.example/"))
	assert.Equal(t, "index.md", markdownFilename("://bad"))
}
