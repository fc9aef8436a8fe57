package scenario

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/conneroisu/groq-go"

	"github.com/will4381/comic-slideshows/pkg/prompts"
)

var _ Source = (*GroqClient)(nil)

// GroqClient is an alternate scenario source for deployments without an
// OpenAI key. Groq has no strict schema mode, so the batch size is validated
// after parsing; a wrong-sized batch is a parse failure, not repaired.
type GroqClient struct {
	client  *groq.Client
	model   groq.ChatModel
	prompts *prompts.Prompts
}

func NewGroqClient(apiKey, model string, p *prompts.Prompts) (*GroqClient, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client:  client,
		model:   groq.ChatModel(model),
		prompts: p,
	}, nil
}

func (c *GroqClient) GenerateScenarios(ctx context.Context) ([]Pair, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: c.prompts.System.Scenarios},
			{Role: groq.RoleUser, Content: c.prompts.Scenario.Request},
		},
		ResponseFormat: &groq.ChatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("generate scenarios: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty response")
	}

	pairs, err := parseBatch(content)
	if err != nil {
		return nil, err
	}

	if len(pairs) != BatchSize {
		return nil, fmt.Errorf("expected %d scenarios, got %d", BatchSize, len(pairs))
	}

	return pairs, nil
}

// parseBatch accepts either the wrapped {"scenarios": [...]} shape or a bare
// array, since json_object mode does not pin the envelope.
func parseBatch(content string) ([]Pair, error) {
	var wrapped batch
	if err := json.Unmarshal([]byte(content), &wrapped); err == nil && len(wrapped.Scenarios) > 0 {
		return wrapped.Scenarios, nil
	}

	var direct []Pair
	if err := json.Unmarshal([]byte(content), &direct); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return direct, nil
}
