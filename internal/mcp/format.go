package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/amplifydocs/amplify-docs-mcp/internal/scraper"
	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// Presentation layer for tool output. Ranking and classification live in
// internal/relevance; everything here is text formatting only.

const snippetLength = 200

// formatSearchResponse renders a ranked search response. Highlighted results
// get a star marker.
func formatSearchResponse(query string, resp *types.SearchResponse) string {
	var b strings.Builder

	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(string(w.Severity)), w.Message)
		fmt.Fprintf(&b, "Instead: %s\n\n", w.Alternative)
	}

	if len(resp.Results) == 0 {
		fmt.Fprintf(&b, "No documents found matching %q\n", query)
	} else {
		fmt.Fprintf(&b, "Found %d documents matching %q (intent: %s):\n\n", len(resp.Results), query, resp.Intent)
		for _, r := range resp.Results {
			marker := ""
			if r.Highlighted {
				marker = "★ "
			}
			fmt.Fprintf(&b, "%s**%s** (%s)\n", marker, r.Document.Title, r.Document.Category)
			fmt.Fprintf(&b, "URL: %s\n", r.Document.URL)
			if len(r.BoostReasons) > 0 {
				fmt.Fprintf(&b, "Why: %s\n", strings.Join(r.BoostReasons, "; "))
			}
			fmt.Fprintf(&b, "Content: %s\n\n", snippet(r.Document.Content))
		}
	}

	if len(resp.Suggestions) > 0 {
		b.WriteString("Having trouble finding what you need? Try:\n")
		for _, s := range resp.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}

// formatDocument renders one full document with its Markdown content.
func formatDocument(doc *types.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "**URL:** %s\n", doc.URL)
	fmt.Fprintf(&b, "**Category:** %s\n", doc.Category)
	fmt.Fprintf(&b, "**Last Updated:** %s\n\n", doc.LastScraped.Format(time.RFC3339))
	b.WriteString("## Content\n\n")
	b.WriteString(doc.MarkdownContent)
	return b.String()
}

// formatCategories renders the category list with display names.
func formatCategories(categories []types.Category) string {
	if len(categories) == 0 {
		return "No categories indexed yet. Run fetch_docs first."
	}
	var b strings.Builder
	b.WriteString("Available categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s (%s)\n", c, c.DisplayName())
	}
	return b.String()
}

// formatStats renders index statistics and the latest scrape run.
func formatStats(stats *types.Stats, run *storage.ScrapeRun) string {
	var b strings.Builder
	b.WriteString("**Documentation Statistics:**\n\n")
	fmt.Fprintf(&b, "Total Documents: %d\n", stats.TotalDocuments)
	if stats.LastUpdate.IsZero() {
		b.WriteString("Last Update: Never\n")
	} else {
		fmt.Fprintf(&b, "Last Update: %s\n", stats.LastUpdate.Format(time.RFC3339))
	}

	if len(stats.ByCategory) > 0 {
		b.WriteString("\n**Documents by Category:**\n")
		for _, c := range types.AllCategories {
			if count, ok := stats.ByCategory[c]; ok {
				fmt.Fprintf(&b, "- %s: %d\n", c, count)
			}
		}
	}

	if run != nil {
		fmt.Fprintf(&b, "\n**Last Scrape Run:** %s (%d pages, started %s)\n",
			run.Status, run.TotalPages, run.StartedAt.Format(time.RFC3339))
	}
	return b.String()
}

// formatPatterns renders pattern search hits with their code blocks pulled
// out of the Markdown content.
func formatPatterns(patternType string, hits []storage.SearchHit) string {
	if len(hits) == 0 {
		return fmt.Sprintf("No patterns found for %q", patternType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s Patterns in Amplify Gen 2:**\n\n", titleCase(patternType))
	for _, hit := range hits {
		fmt.Fprintf(&b, "## %s\n", hit.Document.Title)
		fmt.Fprintf(&b, "**URL:** %s\n", hit.Document.URL)
		fmt.Fprintf(&b, "**Category:** %s\n\n", hit.Document.Category)
		for _, block := range extractCodeBlocks(hit.Document.MarkdownContent) {
			fmt.Fprintf(&b, "```\n%s\n```\n\n", block)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}

// formatScrapeResult renders the outcome of a fetch_docs run.
func formatScrapeResult(result *scraper.Result) string {
	if result.Skipped {
		return "Documentation already indexed. Pass force_refresh=true to re-scrape."
	}
	return fmt.Sprintf("Scrape complete: %d pages discovered, %d stored, %d errors.",
		result.Discovered, result.Scraped, result.Errors)
}

// extractCodeBlocks returns the contents of fenced code blocks, fences and
// language tags stripped.
func extractCodeBlocks(markdown string) []string {
	var blocks []string
	var current []string
	inBlock := false

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				if len(current) > 0 {
					blocks = append(blocks, strings.Join(current, "\n"))
				}
				current = nil
				inBlock = false
			} else {
				inBlock = true
			}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	return blocks
}

// snippet truncates content for list display.
func snippet(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) <= snippetLength {
		return content
	}
	return content[:snippetLength] + "..."
}

// titleCase capitalizes the first letter only; pattern types are single
// lowercase words.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const createCommandText = `# Creating an Amplify Gen 2 + Next.js Application

The one reliable command:

` + "```bash\nnpx create-amplify@latest --template nextjs\n```" + `

Avoid these:
- npm create amplify@latest without the template flag leaves an incomplete setup
- Installing Next.js by hand afterwards causes version conflicts

The template pins compatible versions of aws-amplify, @aws-amplify/backend,
and Next.js, so always include --template nextjs.
`
