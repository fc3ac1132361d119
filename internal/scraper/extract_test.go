package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPageMainContent(t *testing.T) {
	html := `<html><head><title>Fallback</title></head><body>
		<nav>Navigation junk</nav>
		<main><h1>Set Up Auth</h1><p>Use defineAuth.</p>
		<script>console.log("noise")</script></main>
	</body></html>`

	page, err := ExtractPage(html)
	require.NoError(t, err)

	assert.Equal(t, "Set Up Auth", page.Title)
	assert.Contains(t, page.Text, "Use defineAuth.")
	assert.NotContains(t, page.Text, "console.log")
	assert.NotContains(t, page.Text, "Navigation junk")
	assert.Contains(t, page.ContentHTML, "<p>Use defineAuth.</p>")
}

func TestExtractPageTitleFallback(t *testing.T) {
	html := `<html><head><title>Docs Home</title></head><body><p>hello</p></body></html>`

	page, err := ExtractPage(html)
	require.NoError(t, err)
	assert.Equal(t, "Docs Home", page.Title)
}

func TestExtractPageBodyFallback(t *testing.T) {
	html := `<html><body><div><p>No main region here.</p></div></body></html>`

	page, err := ExtractPage(html)
	require.NoError(t, err)
	assert.Contains(t, page.Text, "No main region here.")
}

func TestExtractPageRoleMain(t *testing.T) {
	html := `<html><body><div role="main"><h1>Data</h1><p>Model it.</p></div></body></html>`

	page, err := ExtractPage(html)
	require.NoError(t, err)
	assert.Equal(t, "Data", page.Title)
	assert.Contains(t, page.Text, "Model it.")
}
