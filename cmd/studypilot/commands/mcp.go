// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to use the study pipelines via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"studypilot/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs studypilot as an MCP (Model Context Protocol) server over stdio,
exposing the ask_document, generate_quiz, and generate_study_schedule
tools to agents.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by an agent host)
  studypilot mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "studypilot": {
  #       "command": "studypilot",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	study, _, err := buildStudy()
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"StudyPilot",
		"0.1.0",
	)
	mcp.RegisterTools(server, study)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("studypilot MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
