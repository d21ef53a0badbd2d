// ABOUTME: Responders answer the latest message under a fixed system prompt
// ABOUTME: Therapist and logical variants differ only in their instruction
package core

import (
	"context"
	"fmt"

	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/models"
)

// Responder answers the last message and appends one assistant reply.
// It only sees the latest message, never earlier turns.
type Responder struct {
	branch       models.Branch
	systemPrompt string
	model        llm.ChatModel
}

// NewTherapist creates the empathetic responder
func NewTherapist(model llm.ChatModel) *Responder {
	return &Responder{branch: models.BranchTherapist, systemPrompt: therapistPrompt, model: model}
}

// NewLogical creates the fact-focused responder
func NewLogical(model llm.ChatModel) *Responder {
	return &Responder{branch: models.BranchLogical, systemPrompt: logicalPrompt, model: model}
}

// Branch returns the branch this responder serves
func (r *Responder) Branch() models.Branch {
	return r.branch
}

// Respond sends the system prompt plus the last message and appends the reply
func (r *Responder) Respond(ctx context.Context, s models.State) (models.State, error) {
	last, err := s.Last()
	if err != nil {
		return s, err
	}

	reply, err := r.model.Chat(ctx, []models.Message{
		models.SystemMessage(r.systemPrompt),
		models.UserMessage(last.Content),
	})
	if err != nil {
		return s, fmt.Errorf("%s responder: %w: %w", r.branch, ErrModelCall, err)
	}

	return s.Append(models.AssistantMessage(reply)), nil
}

// Echo forwards the whole conversation verbatim and appends the reply
func Echo(model llm.ChatModel) NodeFunc {
	return func(ctx context.Context, s models.State) (models.State, error) {
		if s.Len() == 0 {
			return s, models.ErrEmptyConversation
		}
		reply, err := model.Chat(ctx, s.Messages)
		if err != nil {
			return s, fmt.Errorf("chatbot: %w: %w", ErrModelCall, err)
		}
		return s.Append(models.AssistantMessage(reply)), nil
	}
}
