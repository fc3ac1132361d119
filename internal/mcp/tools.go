package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amplifydocs/amplify-docs-mcp/internal/relevance"
	"github.com/amplifydocs/amplify-docs-mcp/internal/scraper"
	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams     = -32602 // Invalid method parameters
	ErrorCodeInternalError     = -32603 // Internal JSON-RPC error
	ErrorCodeDocumentNotFound  = -32001 // Requested URL is not in the index
	ErrorCodeSearchUnavailable = -32002 // Document store unreachable
)

// patternQueries map a pattern type to the keyword-bag query run against the
// FTS index.
var patternQueries = map[string]string{
	"auth":          "authentication signIn signUp cognito user authenticator",
	"api":           "graphql rest api endpoint mutation query data model",
	"storage":       "s3 storage upload download file fileuploader storageimage",
	"deployment":    "deploy hosting amplify build npx",
	"configuration": "configure amplify_outputs.json setup backend",
	"database":      "dynamodb database table data model schema",
	"functions":     "lambda function serverless backend handler",
}

const patternResultLimit = 5

// PatternQuery returns the search query for a pattern type. Unlisted pattern
// types search for themselves.
func PatternQuery(patternType string) string {
	if q, ok := patternQueries[patternType]; ok {
		return q
	}
	return patternType
}

// handleSearchDocs handles the search_docs tool invocation
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	// An empty query is accepted; it degrades to a no-match response.
	query := getStringDefault(args, "query", "")

	limit := getIntDefault(args, "limit", s.settings.Search.DefaultLimit)
	if limit < 1 || limit > 50 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 50", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	category := getStringDefault(args, "category", "")
	if category != "" && !types.Category(category).Valid() {
		return nil, newMCPError(ErrorCodeInvalidParams, "unknown category", map[string]interface{}{
			"param":   "category",
			"value":   category,
			"allowed": categoryEnum,
		})
	}

	var sctx *types.SearchContext
	currentFile := getStringDefault(args, "current_file", "")
	lastError := getStringDefault(args, "last_error", "")
	if currentFile != "" || lastError != "" {
		sctx = &types.SearchContext{CurrentFile: currentFile, LastError: lastError}
	}

	resp, err := s.engine.Search(ctx, relevance.SearchRequest{
		Query:    query,
		Category: category,
		Limit:    limit,
		Context:  sctx,
		CacheTTL: s.settings.Search.CacheTTL,
	})
	if err != nil {
		if errors.Is(err, relevance.ErrSearchUnavailable) {
			return nil, newMCPError(ErrorCodeSearchUnavailable, "search unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatSearchResponse(query, resp)), nil
}

// handleGetDocument handles the get_document tool invocation
func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	url, ok := args["url"].(string)
	if !ok || url == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "url parameter is required", map[string]interface{}{
			"param":  "url",
			"reason": "missing or empty",
		})
	}

	doc, err := s.store.GetDocument(ctx, url)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeDocumentNotFound, "document not found", map[string]interface{}{
			"url": url,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "document lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatDocument(doc)), nil
}

// handleListCategories handles the list_categories tool invocation
func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list categories", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(formatCategories(categories)), nil
}

// handleGetStats handles the get_stats tool invocation
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read stats", map[string]interface{}{
			"error": err.Error(),
		})
	}

	var run *storage.ScrapeRun
	if latest, err := s.store.LatestScrapeRun(ctx); err == nil {
		run = latest
	}

	return mcp.NewToolResultText(formatStats(stats, run)), nil
}

// handleFindPatterns handles the find_patterns tool invocation
func (s *Server) handleFindPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	patternType, ok := args["pattern_type"].(string)
	if !ok || patternType == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "pattern_type parameter is required", map[string]interface{}{
			"param":  "pattern_type",
			"reason": "missing or empty",
		})
	}

	hits, err := s.store.SearchRanked(ctx, PatternQuery(patternType), patternResultLimit)
	if err != nil {
		return nil, newMCPError(ErrorCodeSearchUnavailable, "search unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatPatterns(patternType, hits)), nil
}

// handleGetCreateCommand handles the get_create_command tool invocation
func (s *Server) handleGetCreateCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(createCommandText), nil
}

// handleFetchDocs handles the fetch_docs tool invocation
func (s *Server) handleFetchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := s.scraper.Run(ctx, scraper.RunOptions{
		BaseURL:      s.settings.Scrape.BaseURL,
		ForceRefresh: getBoolDefault(args, "force_refresh", false),
		MarkdownDir:  getStringDefault(args, "markdown_dir", s.settings.Scrape.MarkdownDir),
	})
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "scrape failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatScrapeResult(result)), nil
}

// Parameter helpers

// newMCPError builds an MCP protocol error; the framework handles encoding.
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
