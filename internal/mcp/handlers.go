// ABOUTME: MCP tool handler implementations for the chatroute server
// ABOUTME: Each call is a single stateless turn over a fresh conversation
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harper/chatroute/internal/core"
	"github.com/harper/chatroute/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	classifier *core.Classifier
	graph      graph
	logger     *log.Logger
}

// NewHandlers creates handlers around a classifier and the compiled routing graph
func NewHandlers(classifier *core.Classifier, g graph, logger *log.Logger) *Handlers {
	return &Handlers{classifier: classifier, graph: g, logger: logger}
}

// ClassificationResult is returned by classify_message
type ClassificationResult struct {
	RequestID   string        `json:"request_id"`
	MessageType models.Label  `json:"message_type"`
	Branch      models.Branch `json:"branch"`
}

// RouteResult is returned by route_message
type RouteResult struct {
	RequestID   string        `json:"request_id"`
	MessageType models.Label  `json:"message_type"`
	Branch      models.Branch `json:"branch"`
	Reply       string        `json:"reply"`
}

// ClassifyMessage handles the classify_message tool
func (h *Handlers) ClassifyMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := messageState(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	requestID := uuid.New().String()
	state, err = h.classifier.Classify(ctx, state)
	if err != nil {
		h.logger.Error("classify_message failed", "request", requestID, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	return jsonResult(ClassificationResult{
		RequestID:   requestID,
		MessageType: state.Label,
		Branch:      core.Route(state.Label),
	})
}

// RouteMessage handles the route_message tool
func (h *Handlers) RouteMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := messageState(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	requestID := uuid.New().String()
	state, err = h.graph.Invoke(ctx, state)
	if err != nil {
		h.logger.Error("route_message failed", "request", requestID, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("routing failed: %v", err)), nil
	}

	last, err := state.Last()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	h.logger.Info("route_message", "request", requestID, "label", state.Label)
	return jsonResult(RouteResult{
		RequestID:   requestID,
		MessageType: state.Label,
		Branch:      core.Route(state.Label),
		Reply:       last.Content,
	})
}

// DescribeGraph handles the describe_graph tool
func (h *Handlers) DescribeGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(h.graph.Mermaid()), nil
}

func messageState(request mcp.CallToolRequest) (models.State, error) {
	message, err := request.RequireString("message")
	if err != nil || message == "" {
		return models.State{}, fmt.Errorf("message argument is required and must be a non-empty string")
	}
	return models.NewState(models.UserMessage(message))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
