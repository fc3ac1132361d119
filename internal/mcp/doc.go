// Package mcp implements the Model Context Protocol (MCP) server for the
// Amplify Gen 2 documentation index.
//
// The server exposes seven tools to AI coding assistants:
//   - search_docs: Search indexed documentation with intent-aware ranking
//   - get_document: Fetch one document as markdown by URL
//   - list_categories: List categories that contain documents
//   - get_stats: Report index statistics and the latest scrape run
//   - find_patterns: Find code patterns for a topic (auth, api, storage, ...)
//   - get_create_command: Return the recommended project creation command
//   - fetch_docs: Crawl the documentation site and (re)build the index
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server is typically started via the serve command:
//
//	amplifydocs serve
//
// It then listens on stdin for MCP protocol messages and writes responses to
// stdout. All logging goes to stderr; stdout is reserved for the protocol.
//
// # Tool: search_docs
//
// Search the index with optional caller context:
//
//	Request:
//	{
//	  "name": "search_docs",
//	  "arguments": {
//	    "query": "set up authentication",
//	    "category": "backend",
//	    "limit": 10,
//	    "current_file": "amplify/auth/resource.ts",
//	    "last_error": "Cannot find module './auth/resource.ts'"
//	  }
//	}
//
// The response is a text block: anti-pattern warnings first (highest severity
// on top), then results ordered by combined relevance score, then recovery
// suggestions when the last three searches all came up empty.
//
// # Tool: fetch_docs
//
// Crawl and index the documentation site:
//
//	Request:
//	{
//	  "name": "fetch_docs",
//	  "arguments": {
//	    "force_refresh": false,
//	    "markdown_dir": ""
//	  }
//	}
//
// When the index is already populated the crawl is skipped unless
// force_refresh is set. A non-empty markdown_dir additionally exports each
// scraped page as a markdown file.
//
// # MCP Client Configuration
//
// Configure in an MCP client's settings:
//
//	{
//	  "mcpServers": {
//	    "amplify-docs": {
//	      "command": "/usr/local/bin/amplifydocs",
//	      "args": ["serve"]
//	    }
//	  }
//	}
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC error responses:
//
//	{
//	  "error": {
//	    "code": -32602,
//	    "message": "limit must be between 1 and 50",
//	    "data": {"param": "limit", "value": 200}
//	  }
//	}
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (database, scraper)
//   - -32001: Document not found
//   - -32002: Search unavailable (store query failed)
package mcp
