// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Lets LLM agents classify and route messages via stdio
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/chatroute/internal/core"
	"github.com/harper/chatroute/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs chatroute as an MCP (Model Context Protocol) server over stdio.
LLM agents can call classify_message, route_message and describe_graph.
Every call is a single turn; nothing is remembered between calls.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  chatroute mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "chatroute": {
  #       "command": "chatroute",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	graph, err := core.NewRoutingGraph(a.Model, a.Logger)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	handlers := mcp.NewHandlers(core.NewClassifier(a.Model, a.Logger), graph, a.Logger)
	server := mcp.NewServer(versionInfo.Version, handlers)

	// stdout carries the protocol, so all diagnostics go to stderr
	a.Logger.Info("MCP server starting on stdio")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
