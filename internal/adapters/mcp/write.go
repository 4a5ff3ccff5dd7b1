package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"accesstrack/internal/application/commands"
	"accesstrack/internal/ports"
)

// RegisterWriteTools adds the tools that update access times.
func RegisterWriteTools(s *server.MCPServer, tracker ports.AccessTracker, journal ports.AccessJournal) {
	s.AddTool(markAccessedTool(), markAccessedHandler(tracker))
	if journal != nil {
		s.AddTool(forgetTool(), forgetHandler(tracker, journal))
	}
}

// --- mark_accessed ---

func markAccessedTool() mcp.Tool {
	return mcp.NewTool("mark_accessed",
		mcp.WithDescription("Mark files as accessed now. Each file's unit at the configured depth below the base directory is touched once; files outside the base directory are ignored."),
		mcp.WithArray("files",
			mcp.Description("Absolute file paths"),
			mcp.WithStringItems(),
			mcp.Required(),
		),
	)
}

func markAccessedHandler(tracker ports.AccessTracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files := req.GetStringSlice("files", nil)

		result, err := commands.NewMarkAccessedCommand(tracker, files).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- forget ---

func forgetTool() mcp.Tool {
	return mcp.NewTool("forget",
		mcp.WithDescription("Drop the journaled access time of a tracked unit."),
		mcp.WithString("unit",
			mcp.Description("Path of the tracked unit"),
			mcp.Required(),
		),
	)
}

func forgetHandler(tracker ports.AccessTracker, journal ports.AccessJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		unit := req.GetString("unit", "")

		result, err := commands.NewForgetCommand(tracker, journal, unit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
