package mcp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifydocs/amplify-docs-mcp/internal/config"
	"github.com/amplifydocs/amplify-docs-mcp/pkg/types"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	settings, err := config.LoadSettings()
	require.NoError(t, err)
	settings.DBPath = filepath.Join(t.TempDir(), "docs.db")

	s, err := NewServer(settings)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.store.Close() })
	return s
}

func seedServerDocs(t *testing.T, s *Server) {
	t.Helper()
	ctx := context.Background()

	docs := []*types.Document{
		{
			URL:             "https://docs.example.com/build-a-backend/auth/",
			Title:           "Authentication",
			Content:         "Configure defineAuth with loginWith email and cognito user pools.",
			MarkdownContent: "# Authentication\n\n```\nexport const auth = defineAuth({ loginWith: { email: true } });\n```\n",
			Category:        types.CategoryBackend,
			LastScraped:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			URL:             "https://docs.example.com/start/quickstart/",
			Title:           "Quickstart",
			Content:         "Create a new project with npx create-amplify.",
			MarkdownContent: "# Quickstart\n",
			Category:        types.CategoryGettingStarted,
			LastScraped:     time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, d := range docs {
		require.NoError(t, s.store.UpsertDocument(ctx, d))
	}
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestNewServer(t *testing.T) {
	s := setupTestServer(t)

	assert.NotNil(t, s.store)
	assert.NotNil(t, s.scraper)
	assert.NotNil(t, s.engine)
	assert.NotNil(t, s.mcp)
}

func TestHandleSearchDocs(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleSearchDocs(context.Background(), callRequest(map[string]interface{}{
		"query": "defineAuth login",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Authentication")
	assert.Contains(t, text, "intent: auth")
}

func TestHandleSearchDocsEmptyQuery(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	// Empty queries are accepted, not rejected.
	result, err := s.handleSearchDocs(context.Background(), callRequest(map[string]interface{}{
		"query": "  ",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "No documents found")
}

func TestHandleSearchDocsBadLimit(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.handleSearchDocs(context.Background(), callRequest(map[string]interface{}{
		"query": "auth",
		"limit": float64(0),
	}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.True(t, errors.As(err, &mcpErr))
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleSearchDocsWarning(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleSearchDocs(context.Background(), callRequest(map[string]interface{}{
		"query": "should I clone template",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "[HIGH]")
	assert.Contains(t, text, "npx create-next-app")
}

func TestHandleGetDocument(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleGetDocument(context.Background(), callRequest(map[string]interface{}{
		"url": "https://docs.example.com/start/quickstart/",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "# Quickstart")
	assert.Contains(t, text, "**Category:** getting-started")
}

func TestHandleGetDocumentNotFound(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.handleGetDocument(context.Background(), callRequest(map[string]interface{}{
		"url": "https://docs.example.com/missing/",
	}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.True(t, errors.As(err, &mcpErr))
	assert.Equal(t, ErrorCodeDocumentNotFound, mcpErr.Code)
}

func TestHandleGetDocumentMissingURL(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.handleGetDocument(context.Background(), callRequest(map[string]interface{}{}))
	require.Error(t, err)

	var mcpErr *MCPError
	require.True(t, errors.As(err, &mcpErr))
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleListCategories(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleListCategories(context.Background(), callRequest(nil))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "backend (Backend Development)")
	assert.Contains(t, text, "getting-started (Getting Started)")
}

func TestHandleGetStats(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleGetStats(context.Background(), callRequest(nil))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Total Documents: 2")
	assert.Contains(t, text, "- backend: 1")
}

func TestHandleFindPatterns(t *testing.T) {
	s := setupTestServer(t)
	seedServerDocs(t, s)

	result, err := s.handleFindPatterns(context.Background(), callRequest(map[string]interface{}{
		"pattern_type": "auth",
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "Auth Patterns in Amplify Gen 2")
	assert.Contains(t, text, "defineAuth({ loginWith: { email: true } })")
}

func TestHandleFindPatternsMissingType(t *testing.T) {
	s := setupTestServer(t)

	_, err := s.handleFindPatterns(context.Background(), callRequest(map[string]interface{}{}))
	require.Error(t, err)
}

func TestHandleGetCreateCommand(t *testing.T) {
	s := setupTestServer(t)

	result, err := s.handleGetCreateCommand(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "npx create-amplify@latest --template nextjs")
}
