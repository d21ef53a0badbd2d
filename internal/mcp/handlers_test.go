// ABOUTME: Tests for MCP tool handlers and registration
// ABOUTME: Uses a scripted model so no network access is needed
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/harper/chatroute/internal/core"
	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/logging"
	"github.com/harper/chatroute/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

type fakeModel struct {
	label    string
	reply    string
	chatErr  error
	chatSeen int
}

func (m *fakeModel) Chat(context.Context, []models.Message) (string, error) {
	m.chatSeen++
	return m.reply, m.chatErr
}

func (m *fakeModel) ChatStructured(context.Context, []models.Message, llm.ResponseSchema) (string, error) {
	return `{"message_type":"` + m.label + `"}`, nil
}

func newTestHandlers(t *testing.T, model *fakeModel) *Handlers {
	t.Helper()
	logger := logging.Discard()
	g, err := core.NewRoutingGraph(model, logger)
	if err != nil {
		t.Fatalf("NewRoutingGraph() error = %v", err)
	}
	return NewHandlers(core.NewClassifier(model, logger), g, logger)
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestClassifyMessage(t *testing.T) {
	model := &fakeModel{label: "emotional"}
	h := newTestHandlers(t, model)

	result, err := h.ClassifyMessage(context.Background(), callRequest("classify_message", map[string]any{"message": "I'm sad"}))
	if err != nil {
		t.Fatalf("ClassifyMessage() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("ClassifyMessage() returned tool error: %s", resultText(t, result))
	}

	var out ClassificationResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.MessageType != models.LabelEmotional || out.Branch != models.BranchTherapist {
		t.Errorf("result = %+v", out)
	}
	if out.RequestID == "" {
		t.Error("RequestID should be set")
	}
	if model.chatSeen != 0 {
		t.Error("classify_message should not call a responder")
	}
}

func TestClassifyMessage_SchemaViolation(t *testing.T) {
	h := newTestHandlers(t, &fakeModel{label: "confused"})

	result, err := h.ClassifyMessage(context.Background(), callRequest("classify_message", map[string]any{"message": "?"}))
	if err != nil {
		t.Fatalf("ClassifyMessage() error = %v", err)
	}
	if !result.IsError {
		t.Error("unknown label should produce a tool error")
	}
}

func TestRouteMessage(t *testing.T) {
	model := &fakeModel{label: "logical", reply: "100°C at sea level."}
	h := newTestHandlers(t, model)

	result, err := h.RouteMessage(context.Background(), callRequest("route_message", map[string]any{"message": "What is the boiling point of water?"}))
	if err != nil {
		t.Fatalf("RouteMessage() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("RouteMessage() returned tool error: %s", resultText(t, result))
	}

	var out RouteResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Branch != models.BranchLogical || out.Reply != "100°C at sea level." {
		t.Errorf("result = %+v", out)
	}
}

func TestRouteMessage_ModelFailure(t *testing.T) {
	h := newTestHandlers(t, &fakeModel{label: "logical", chatErr: errors.New("timeout")})

	result, err := h.RouteMessage(context.Background(), callRequest("route_message", map[string]any{"message": "hi"}))
	if err != nil {
		t.Fatalf("RouteMessage() error = %v", err)
	}
	if !result.IsError {
		t.Error("model failure should produce a tool error")
	}
	if !strings.Contains(resultText(t, result), "model call failed") {
		t.Errorf("error text = %q", resultText(t, result))
	}
}

func TestHandlers_MissingMessage(t *testing.T) {
	h := newTestHandlers(t, &fakeModel{label: "logical"})

	for _, args := range []map[string]any{{}, {"message": ""}, {"message": 42}} {
		result, err := h.RouteMessage(context.Background(), callRequest("route_message", args))
		if err != nil {
			t.Fatalf("RouteMessage() error = %v", err)
		}
		if !result.IsError {
			t.Errorf("args %v should produce a tool error", args)
		}
	}
}

func TestDescribeGraph(t *testing.T) {
	h := newTestHandlers(t, &fakeModel{})

	result, err := h.DescribeGraph(context.Background(), callRequest("describe_graph", nil))
	if err != nil {
		t.Fatalf("DescribeGraph() error = %v", err)
	}
	if !strings.HasPrefix(resultText(t, result), "flowchart TD") {
		t.Errorf("DescribeGraph() = %q", resultText(t, result))
	}
}

func TestNewServer_ListsTools(t *testing.T) {
	srv := NewServer("test", newTestHandlers(t, &fakeModel{}))

	resp := srv.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	for _, name := range []string{"classify_message", "route_message", "describe_graph"} {
		if !strings.Contains(string(b), `"`+name+`"`) {
			t.Errorf("tools/list missing %s: %s", name, b)
		}
	}
}
