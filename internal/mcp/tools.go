// ABOUTME: MCP tool definitions and registration for the chatroute server
// ABOUTME: Exposes classification, routed replies and the graph diagram
package mcp

import (
	"github.com/harper/chatroute/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, handlers *Handlers) {
	messageSchema := mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"message": map[string]interface{}{
				"type":        "string",
				"description": "User message to process",
			},
		},
		Required: []string{"message"},
	}

	// 1. classify_message - label a message without answering it
	server.AddTool(mcp.Tool{
		Name:        "classify_message",
		Description: "Classify a message as emotional or logical and report which responder it would be routed to.",
		InputSchema: messageSchema,
	}, handlers.ClassifyMessage)

	// 2. route_message - classify, route and answer
	server.AddTool(mcp.Tool{
		Name:        "route_message",
		Description: "Classify a message, route it to the therapist or logical responder, and return the reply.",
		InputSchema: messageSchema,
	}, handlers.RouteMessage)

	// 3. describe_graph - Mermaid diagram of the routing graph
	server.AddTool(mcp.Tool{
		Name:        "describe_graph",
		Description: "Return the routing graph as a Mermaid flowchart.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.DescribeGraph)
}

// NewServer creates an MCP server with every tool registered
func NewServer(version string, handlers *Handlers) *mcpserver.MCPServer {
	server := mcpserver.NewMCPServer(
		"chatroute",
		version,
		mcpserver.WithToolCapabilities(false),
	)
	RegisterTools(server, handlers)
	return server
}

// graph is the subset of *core.Graph the handlers need
type graph interface {
	core.Invoker
	Mermaid() string
}
