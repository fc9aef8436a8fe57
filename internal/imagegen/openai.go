package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

var _ Generator = (*OpenAIClient)(nil)

type OpenAIClient struct {
	client  *openai.Client
	model   string
	size    string
	quality string
}

func NewOpenAIClient(apiKey, model, size, quality string) *OpenAIClient {
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		size:    size,
		quality: quality,
	}
}

// Generate requests one image, decodes the base64 payload, and writes it as
// comic_<index+1>.png inside outputDir.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, index int, outputDir string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:   c.model,
		Prompt:  prompt,
		Size:    c.size,
		Quality: c.quality,
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("generate image %d: %w", index+1, err)
	}

	if len(resp.Data) == 0 {
		return "", fmt.Errorf("generate image %d: no image data in response", index+1)
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return "", fmt.Errorf("decode image %d: %w", index+1, err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("comic_%d.png", index+1))
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("save image %d: %w", index+1, err)
	}

	return path, nil
}
