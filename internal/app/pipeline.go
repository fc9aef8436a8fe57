package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/will4381/comic-slideshows/internal/scenario"
	"github.com/will4381/comic-slideshows/pkg/prompts"
)

// Pipeline runs one generation end to end: fetch a scenario batch, compose a
// slide prompt per scenario, and render the images in parallel.
type Pipeline struct {
	service *Service
}

type GenerateResult struct {
	OutputDir  string
	ImagePaths []string
	Generated  int
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

func (p *Pipeline) Generate(ctx context.Context) (*GenerateResult, error) {
	pairs, err := p.service.Scenarios().GenerateScenarios(ctx)
	if err != nil {
		slog.Error("scenario generation failed", "error", err)
		pairs = nil
	}
	if len(pairs) == 0 {
		slog.Info("no scenarios to render")
		return &GenerateResult{}, nil
	}

	slidePrompts, err := p.composePrompts(pairs)
	if err != nil {
		return nil, err
	}

	sess := newSession(p.service.Config().Output.Dir)
	if err := sess.create(); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}
	slog.Info("generation started", "folder", sess.dir, "scenarios", len(pairs))

	paths := p.generateImages(ctx, slidePrompts, sess.dir)

	generated := 0
	for _, path := range paths {
		if path != "" {
			generated++
		}
	}
	slog.Info("generation finished", "generated", generated, "requested", len(slidePrompts))

	return &GenerateResult{
		OutputDir:  sess.dir,
		ImagePaths: paths,
		Generated:  generated,
	}, nil
}

func (p *Pipeline) composePrompts(pairs []scenario.Pair) ([]string, error) {
	composed := make([]string, len(pairs))
	for i, pair := range pairs {
		position := i + 1
		text, err := p.service.Prompts().ComposeSlide(prompts.SlideParams{
			Success:    pair.Success,
			Work:       pair.Work,
			TopText:    pair.TopText,
			BottomText: pair.BottomText,
			Position:   position,
		})
		if err != nil {
			return nil, fmt.Errorf("compose slide %d: %w", position, err)
		}
		composed[i] = text
	}
	return composed, nil
}

// generateImages fans out one worker per slide. Failed slides log and leave an
// empty slot; the rest of the batch still completes.
func (p *Pipeline) generateImages(ctx context.Context, slidePrompts []string, outputDir string) []string {
	paths := make([]string, len(slidePrompts))

	var wg sync.WaitGroup
	sem := make(chan struct{}, scenario.BatchSize)

	for i, slidePrompt := range slidePrompts {
		wg.Add(1)
		go func(index int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			path, err := p.service.Images().Generate(ctx, text, index, outputDir)
			if err != nil {
				slog.Error("image generation failed", "slide", index+1, "error", err)
				return
			}
			slog.Info("image saved", "slide", index+1, "path", path)
			paths[index] = path
		}(i, slidePrompt)
	}

	wg.Wait()
	return paths
}
