// ABOUTME: Classifier labels the latest message as emotional or logical
// ABOUTME: Uses a schema-constrained reply and validates it before use
package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harper/chatroute/internal/llm"
	"github.com/harper/chatroute/internal/models"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// classification is the structured reply the classifier asks for
type classification struct {
	MessageType string `json:"message_type"`
}

// ClassificationSchema is the response schema for the classifier: one
// required string field restricted to the two labels.
func ClassificationSchema() llm.ResponseSchema {
	labels := models.Labels()
	enum := make([]string, len(labels))
	for i, l := range labels {
		enum[i] = string(l)
	}

	return llm.ResponseSchema{
		Name:        "message_classifier",
		Description: "Routing label for the latest user message",
		Definition: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"message_type": {
					Type:        jsonschema.String,
					Description: classifierFieldDescription,
					Enum:        enum,
				},
			},
			Required:             []string{"message_type"},
			AdditionalProperties: false,
		},
	}
}

// Classifier sets the state's label from the latest message
type Classifier struct {
	model  llm.ChatModel
	logger *log.Logger
}

// NewClassifier creates a new Classifier
func NewClassifier(model llm.ChatModel, logger *log.Logger) *Classifier {
	return &Classifier{model: model, logger: logger}
}

// Classify reads the last message, asks the model for a label and returns
// the state with it set. Anything but a valid label is an error.
func (c *Classifier) Classify(ctx context.Context, s models.State) (models.State, error) {
	last, err := s.Last()
	if err != nil {
		return s, err
	}

	raw, err := c.model.ChatStructured(ctx, []models.Message{
		models.SystemMessage(classifierPrompt),
		models.UserMessage(last.Content),
	}, ClassificationSchema())
	if err != nil {
		return s, fmt.Errorf("classify message: %w: %w", ErrModelCall, err)
	}

	label, err := parseClassification(raw)
	if err != nil {
		return s, err
	}

	c.logger.Debug("classified message", "label", label)
	return s.WithLabel(label), nil
}

func parseClassification(raw string) (models.Label, error) {
	var out classification
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.LabelUnset, fmt.Errorf("%w: decode %q: %v", ErrSchemaViolation, raw, err)
	}
	label, err := models.ParseLabel(out.MessageType)
	if err != nil {
		return models.LabelUnset, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return label, nil
}
