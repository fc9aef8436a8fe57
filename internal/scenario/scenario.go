package scenario

import "context"

// BatchSize is the fixed number of scenario pairs per generation run.
const BatchSize = 4

// Pair is one success/work scenario with its two panel captions. Pairs are
// produced only by a Source and are not modified afterwards.
type Pair struct {
	Success    string `json:"success"`
	Work       string `json:"work"`
	TopText    string `json:"top_text"`
	BottomText string `json:"bottom_text"`
}

// Source produces one batch of scenario pairs per call. A model refusal is
// not an error: implementations return (nil, nil) so the caller can end the
// run cleanly with zero scenarios.
type Source interface {
	GenerateScenarios(ctx context.Context) ([]Pair, error)
}
