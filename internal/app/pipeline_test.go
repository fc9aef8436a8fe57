package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/will4381/comic-slideshows/internal/scenario"
	"github.com/will4381/comic-slideshows/pkg/config"
	"github.com/will4381/comic-slideshows/pkg/prompts"
)

type mockSource struct {
	pairs []scenario.Pair
	err   error
	calls int
}

func (m *mockSource) GenerateScenarios(ctx context.Context) ([]scenario.Pair, error) {
	m.calls++
	return m.pairs, m.err
}

type mockGenerator struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	failAt  map[int]bool
	delays  map[int]time.Duration
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string, index int, outputDir string) (string, error) {
	if d, ok := m.delays[index]; ok {
		time.Sleep(d)
	}

	m.mu.Lock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.failAt[index] {
		return "", errors.New("image API unavailable")
	}

	path := filepath.Join(outputDir, fmt.Sprintf("comic_%d.png", index+1))
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func fourPairs() []scenario.Pair {
	pairs := make([]scenario.Pair, scenario.BatchSize)
	for i := range pairs {
		pairs[i] = scenario.Pair{
			Success:    fmt.Sprintf("success %d", i+1),
			Work:       fmt.Sprintf("work %d", i+1),
			TopText:    fmt.Sprintf("top %d", i+1),
			BottomText: fmt.Sprintf("bottom %d", i+1),
		}
	}
	return pairs
}

func newTestPipeline(t *testing.T, source scenario.Source, images *mockGenerator) (*Pipeline, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Output.Dir = dir
	service := NewService(ServiceOptions{
		Config:    cfg,
		Scenarios: source,
		Images:    images,
		Prompts:   prompts.Default(),
	})
	return NewPipeline(service), dir
}

func TestGenerateFullBatch(t *testing.T) {
	images := &mockGenerator{}
	pipeline, baseDir := newTestPipeline(t, &mockSource{pairs: fourPairs()}, images)

	result, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if result.Generated != scenario.BatchSize {
		t.Errorf("Generated = %d, want %d", result.Generated, scenario.BatchSize)
	}
	if images.calls != scenario.BatchSize {
		t.Errorf("image generator called %d times, want %d", images.calls, scenario.BatchSize)
	}
	if !strings.HasPrefix(filepath.Base(result.OutputDir), "generation_") {
		t.Errorf("output dir %q missing generation_ prefix", result.OutputDir)
	}
	if filepath.Dir(result.OutputDir) != baseDir {
		t.Errorf("output dir %q not under base dir %q", result.OutputDir, baseDir)
	}

	for i, path := range result.ImagePaths {
		want := filepath.Join(result.OutputDir, fmt.Sprintf("comic_%d.png", i+1))
		if path != want {
			t.Errorf("ImagePaths[%d] = %q, want %q", i, path, want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected image file at %s: %v", want, err)
		}
	}
}

func TestGenerateEmbedsScenarioFields(t *testing.T) {
	images := &mockGenerator{}
	pipeline, _ := newTestPipeline(t, &mockSource{pairs: fourPairs()}, images)

	if _, err := pipeline.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	joined := strings.Join(images.prompts, "\n")
	for i := 1; i <= scenario.BatchSize; i++ {
		for _, field := range []string{"success", "work", "top", "bottom"} {
			want := fmt.Sprintf("%s %d", field, i)
			if !strings.Contains(joined, want) {
				t.Errorf("composed prompts missing %q", want)
			}
		}
	}
}

func TestGenerateZeroScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source *mockSource
	}{
		{name: "refusal", source: &mockSource{pairs: nil}},
		{name: "sourceError", source: &mockSource{err: errors.New("rate limited")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := &mockGenerator{}
			pipeline, baseDir := newTestPipeline(t, tt.source, images)

			result, err := pipeline.Generate(context.Background())
			if err != nil {
				t.Fatalf("Generate() should not fail on a zero-scenario outcome: %v", err)
			}
			if result.Generated != 0 {
				t.Errorf("Generated = %d, want 0", result.Generated)
			}
			if images.calls != 0 {
				t.Errorf("image generator called %d times, want 0", images.calls)
			}

			entries, err := os.ReadDir(baseDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("expected no output folder, found %d entries", len(entries))
			}
		})
	}
}

func TestGeneratePartialFailure(t *testing.T) {
	images := &mockGenerator{failAt: map[int]bool{2: true}}
	pipeline, _ := newTestPipeline(t, &mockSource{pairs: fourPairs()}, images)

	result, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() should tolerate a single slide failure: %v", err)
	}

	if result.Generated != scenario.BatchSize-1 {
		t.Errorf("Generated = %d, want %d", result.Generated, scenario.BatchSize-1)
	}
	if result.ImagePaths[2] != "" {
		t.Errorf("ImagePaths[2] = %q, want empty for the failed slide", result.ImagePaths[2])
	}
	for _, i := range []int{0, 1, 3} {
		if result.ImagePaths[i] == "" {
			t.Errorf("ImagePaths[%d] empty, want a saved path", i)
		}
	}
}

func TestGenerateOrderStableUnderSkewedCompletion(t *testing.T) {
	images := &mockGenerator{delays: map[int]time.Duration{
		0: 40 * time.Millisecond,
		1: 30 * time.Millisecond,
		2: 20 * time.Millisecond,
		3: 10 * time.Millisecond,
	}}
	pipeline, _ := newTestPipeline(t, &mockSource{pairs: fourPairs()}, images)

	result, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i, path := range result.ImagePaths {
		want := fmt.Sprintf("comic_%d.png", i+1)
		if filepath.Base(path) != want {
			t.Errorf("ImagePaths[%d] = %q, want file %q", i, path, want)
		}
	}
}
