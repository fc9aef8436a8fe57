package imagegen

import "context"

// Generator produces one image per composed prompt and persists it under the
// run's output folder. The 0-based index fixes the output filename, so slot
// naming never depends on completion order.
type Generator interface {
	Generate(ctx context.Context, prompt string, index int, outputDir string) (string, error)
}
