package app

import (
	"errors"
	"fmt"

	"github.com/will4381/comic-slideshows/internal/imagegen"
	"github.com/will4381/comic-slideshows/internal/scenario"
	"github.com/will4381/comic-slideshows/pkg/config"
	"github.com/will4381/comic-slideshows/pkg/prompts"
)

func BuildService(cfg *config.Config) (*Service, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	var source scenario.Source
	switch cfg.Scenario.Provider {
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, errors.New("GROQ_API_KEY is required for the groq scenario provider")
		}
		source, err = scenario.NewGroqClient(cfg.GroqAPIKey, cfg.Scenario.GroqModel, p)
		if err != nil {
			return nil, err
		}
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required")
		}
		source = scenario.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Scenario.Model, p)
	default:
		return nil, fmt.Errorf("unknown scenario provider: %s", cfg.Scenario.Provider)
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required for image generation")
	}
	images := imagegen.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Image.Model, cfg.Image.Size, cfg.Image.Quality)

	return NewService(ServiceOptions{
		Config:    cfg,
		Scenarios: source,
		Images:    images,
		Prompts:   p,
	}), nil
}
