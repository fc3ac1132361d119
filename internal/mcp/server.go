package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/amplifydocs/amplify-docs-mcp/internal/config"
	"github.com/amplifydocs/amplify-docs-mcp/internal/relevance"
	"github.com/amplifydocs/amplify-docs-mcp/internal/scraper"
	"github.com/amplifydocs/amplify-docs-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "amplify-docs-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	store    storage.Store
	scraper  *scraper.Scraper
	engine   *relevance.Engine
	settings *config.Settings
	log      *log.Logger
}

// NewServer creates a new MCP server instance. The database directory is
// created if missing. Logging goes to stderr: stdout belongs to the
// protocol.
func NewServer(settings *config.Settings) (*Server, error) {
	if err := config.ValidateSettings(settings); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(settings.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := storage.NewSQLiteStore(settings.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger := log.New(os.Stderr, "[amplify-docs] ", log.LstdFlags)

	scr := scraper.New(store,
		scraper.WithFetcher(scraper.NewFetcher(scraper.WithTimeout(settings.Scrape.FetchTimeout))),
		scraper.WithRequestsPerSecond(settings.Scrape.RequestsPerSecond),
		scraper.WithConcurrency(settings.Scrape.Concurrency),
		scraper.WithMaxDepth(settings.Scrape.MaxDepth),
		scraper.WithLogger(logger),
	)

	engine := relevance.NewEngine(store, relevance.NewTracker())

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		store:    store,
		scraper:  scr,
		engine:   engine,
		settings: settings,
		log:      logger,
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.store.Close() }()
	s.log.Printf("serving on stdio (db: %s)", s.settings.DBPath)
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool(), s.handleSearchDocs)
	s.mcp.AddTool(getDocumentTool(), s.handleGetDocument)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
	s.mcp.AddTool(getStatsTool(), s.handleGetStats)
	s.mcp.AddTool(findPatternsTool(), s.handleFindPatterns)
	s.mcp.AddTool(getCreateCommandTool(), s.handleGetCreateCommand)
	s.mcp.AddTool(fetchDocsTool(), s.handleFetchDocs)
}
