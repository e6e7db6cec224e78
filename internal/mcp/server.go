// Package mcp exposes workout data and deck generation over the Model
// Context Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Shukuma", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Shukuma workout card server. Query user stats, streaks, session history, the exercise catalog, and generate shuffled workout decks with rest breaks."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetUserStats, Handler: h.getUserStats},
		server.ServerTool{Tool: toolGetSessionHistory, Handler: h.getSessionHistory},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGenerateDeck, Handler: h.generateDeck},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resExerciseCatalog = mcp.NewResource(
	"shukuma://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercise cards with difficulty levels and muscle groups"),
	mcp.WithMIMEType("application/json"),
)
