package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"accesstrack/internal/adapters/filesystem"
	mcpadapter "accesstrack/internal/adapters/mcp"
	"accesstrack/internal/adapters/sqlite"
	"accesstrack/internal/application"
	"accesstrack/internal/config"
)

func main() {
	baseFlag := flag.String("base", config.BaseDir(), "base directory of the cache")
	depthFlag := flag.Int("depth", config.Depth(), "number of path components below the base that form a unit")
	journalFlag := flag.String("journal", config.JournalPath(), "path of the access journal database")
	flag.Parse()

	// stdout carries the protocol
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	base, err := config.ExpandHome(*baseFlag)
	if err != nil {
		log.Fatalf("accesstrack-mcp: %v", err)
	}

	journal := sqlite.NewJournal()
	if err := journal.Open(base, *journalFlag); err != nil {
		log.Fatalf("accesstrack-mcp: %v", err)
	}
	defer journal.Close()

	writer := application.MultiWriter(filesystem.NewTimestampWriter(filesystem.IgnoreMissing()), journal)
	tracker, err := application.NewSingleDepthTracker(writer, base, *depthFlag)
	if err != nil {
		log.Fatalf("accesstrack-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"accesstrack-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, tracker, journal)
	mcpadapter.RegisterWriteTools(mcpServer, tracker, journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Printf("accesstrack-mcp: %v", err)
	}
}
