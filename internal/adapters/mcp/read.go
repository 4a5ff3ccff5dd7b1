package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"accesstrack/internal/application/commands"
	"accesstrack/internal/ports"
)

// RegisterReadTools adds the read-only tracker tools to the MCP server.
// Journal tools are only registered when journal is non-nil.
func RegisterReadTools(s *server.MCPServer, tracker ports.AccessTracker, journal ports.AccessJournal) {
	s.AddTool(resolveUnitsTool(), resolveUnitsHandler(tracker))
	if journal != nil {
		s.AddTool(lastAccessedTool(), lastAccessedHandler(tracker, journal))
		s.AddTool(listUnitsTool(), listUnitsHandler(journal))
	}
}

// --- resolve_units ---

func resolveUnitsTool() mcp.Tool {
	return mcp.NewTool("resolve_units",
		mcp.WithDescription("Resolve file paths to the tracked units that would be marked accessed, without touching anything."),
		mcp.WithArray("files",
			mcp.Description("Absolute file paths"),
			mcp.WithStringItems(),
			mcp.Required(),
		),
	)
}

func resolveUnitsHandler(tracker ports.AccessTracker) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		files := req.GetStringSlice("files", nil)

		units, err := commands.NewResolveUnitsCommand(tracker, files).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLines(units)
	}
}

// --- last_accessed ---

func lastAccessedTool() mcp.Tool {
	return mcp.NewTool("last_accessed",
		mcp.WithDescription("Return when a tracked unit was last marked accessed."),
		mcp.WithString("unit",
			mcp.Description("Path of the tracked unit"),
			mcp.Required(),
		),
	)
}

func lastAccessedHandler(tracker ports.AccessTracker, journal ports.AccessJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		unit := req.GetString("unit", "")

		result, err := commands.NewLastAccessedCommand(tracker, journal, unit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s  %s", result.Unit, result.LastAccess.UTC().Format(time.RFC3339Nano))), nil
	}
}

// --- list_units ---

func listUnitsTool() mcp.Tool {
	return mcp.NewTool("list_units",
		mcp.WithDescription("List journaled units, least recently accessed first."),
	)
}

func listUnitsHandler(journal ports.AccessJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		records, err := journal.List(ctx)
		if err != nil {
			return toolError(err)
		}
		lines := make([]string, 0, len(records))
		for _, r := range records {
			lines = append(lines, fmt.Sprintf("%s  %s", r.LastAccess.UTC().Format(time.RFC3339), r.Path))
		}
		return formatLines(lines)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatLines(lines []string) (*mcp.CallToolResult, error) {
	if len(lines) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n") + "\n"), nil
}
