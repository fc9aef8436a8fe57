package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"github.com/will4381/comic-slideshows/pkg/prompts"
)

var _ Source = (*OpenAIClient)(nil)

// batchSchema is the strict response schema sent with every scenario request.
// The batch size is enforced here, by the model, rather than repaired after
// the fact.
var batchSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "scenarios": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {
        "type": "object",
        "properties": {
          "success": {"type": "string", "description": "The achievement or success scene."},
          "work": {"type": "string", "description": "The corresponding hard work or habit-building scene."},
          "top_text": {"type": "string", "description": "The text overlay for the top panel."},
          "bottom_text": {"type": "string", "description": "The text overlay for the bottom panel."}
        },
        "required": ["success", "work", "top_text", "bottom_text"],
        "additionalProperties": false
      }
    }
  },
  "required": ["scenarios"],
  "additionalProperties": false
}`)

type batch struct {
	Scenarios []Pair `json:"scenarios"`
}

type OpenAIClient struct {
	client  *openai.Client
	model   string
	prompts *prompts.Prompts
}

func NewOpenAIClient(apiKey, model string, p *prompts.Prompts) *OpenAIClient {
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		prompts: p,
	}
}

// GenerateScenarios makes a single structured-output request for one batch of
// scenario pairs. No retry is performed.
func (c *OpenAIClient) GenerateScenarios(ctx context.Context) ([]Pair, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.prompts.System.Scenarios},
			{Role: openai.ChatMessageRoleUser, Content: c.prompts.Scenario.Request},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "comic_scenario_pairs",
				Schema: batchSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate scenarios: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response")
	}

	message := resp.Choices[0].Message
	if message.Refusal != "" {
		// A refusal is a normal outcome, not a failure: the run proceeds
		// with zero scenarios.
		slog.Warn("Scenario generation refused", "refusal", message.Refusal)
		return nil, nil
	}

	var parsed batch
	if err := json.Unmarshal([]byte(message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if len(parsed.Scenarios) != BatchSize {
		return nil, fmt.Errorf("expected %d scenarios, got %d", BatchSize, len(parsed.Scenarios))
	}

	return parsed.Scenarios, nil
}
