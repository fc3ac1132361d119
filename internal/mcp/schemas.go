package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var categoryEnum = []string{
	"getting-started", "backend", "frontend", "deployment",
	"reference", "guides", "general",
}

// searchDocsTool returns the tool definition for search_docs
func searchDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_docs",
		Description: "Search the indexed Amplify Gen 2 documentation with intent-aware ranking",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (matches titles and content)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Filter by category (optional)",
					"enum":        categoryEnum,
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 10)",
					"default":     10,
					"minimum":     1,
					"maximum":     50,
				},
				"current_file": map[string]interface{}{
					"type":        "string",
					"description": "Path of the file being edited, used for anti-pattern detection (optional)",
				},
				"last_error": map[string]interface{}{
					"type":        "string",
					"description": "Most recent error message, used for anti-pattern detection (optional)",
				},
			},
			Required: []string{"query"},
		},
	}
}

// getDocumentTool returns the tool definition for get_document
func getDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_document",
		Description: "Retrieve a specific documentation page by URL",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The full URL of the document to retrieve",
				},
			},
			Required: []string{"url"},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_categories",
		Description: "List all documentation categories present in the index",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatsTool returns the tool definition for get_stats
func getStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_stats",
		Description: "Get statistics about the indexed documentation",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// findPatternsTool returns the tool definition for find_patterns
func findPatternsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "find_patterns",
		Description: "Find common Amplify Gen 2 implementation patterns with code examples",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern_type": map[string]interface{}{
					"type":        "string",
					"description": "Type of pattern to find",
					"enum": []string{
						"auth", "api", "storage", "deployment",
						"configuration", "database", "functions",
					},
				},
			},
			Required: []string{"pattern_type"},
		},
	}
}

// getCreateCommandTool returns the tool definition for get_create_command
func getCreateCommandTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_create_command",
		Description: "Get the correct command for creating a new Amplify Gen 2 + Next.js application",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// fetchDocsTool returns the tool definition for fetch_docs
func fetchDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "fetch_docs",
		Description: "Crawl the documentation site and refresh the local index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"force_refresh": map[string]interface{}{
					"type":        "boolean",
					"description": "Re-scrape even when the index is already populated",
					"default":     false,
				},
				"markdown_dir": map[string]interface{}{
					"type":        "string",
					"description": "Also export each page as a Markdown file under this directory (optional)",
				},
			},
		},
	}
}
