// ABOUTME: The two graphs the programs run
// ABOUTME: Classify-and-route with two responders, and a single-node echo
package core

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/models"
)

// Node names used by the compiled graphs
const (
	NodeClassifier = "classifier"
	NodeRouter     = "router"
	NodeTherapist  = "therapist"
	NodeLogical    = "logical"
	NodeChatbot    = "chatbot"
)

// NewRoutingGraph wires START -> classifier -> router -> {therapist | logical} -> END
func NewRoutingGraph(model llm.ChatModel, logger *log.Logger) (*Graph, error) {
	classifier := NewClassifier(model, logger)
	therapist := NewTherapist(model)
	logical := NewLogical(model)

	return NewBuilder().
		AddNode(NodeClassifier, classifier.Classify).
		AddNode(NodeRouter, passThrough).
		AddNode(NodeTherapist, therapist.Respond).
		AddNode(NodeLogical, logical.Respond).
		AddEdge(Start, NodeClassifier).
		AddEdge(NodeClassifier, NodeRouter).
		AddConditionalEdges(NodeRouter, routeSelector(logger), map[string]string{
			string(models.BranchTherapist): NodeTherapist,
			string(models.BranchLogical):   NodeLogical,
		}).
		AddEdge(NodeTherapist, End).
		AddEdge(NodeLogical, End).
		Compile()
}

// NewEchoGraph wires START -> chatbot -> END
func NewEchoGraph(model llm.ChatModel) (*Graph, error) {
	return NewBuilder().
		AddNode(NodeChatbot, Echo(model)).
		AddEdge(Start, NodeChatbot).
		AddEdge(NodeChatbot, End).
		Compile()
}

// passThrough is the router node; the branch is chosen on its outgoing edge
func passThrough(_ context.Context, s models.State) (models.State, error) {
	return s, nil
}

func routeSelector(logger *log.Logger) Selector {
	return func(s models.State) string {
		branch := Route(s.Label)
		logger.Debug("routed message", "label", s.Label, "branch", branch)
		return string(branch)
	}
}
