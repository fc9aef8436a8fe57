package app

import (
	"github.com/will4381/comic-slideshows/internal/imagegen"
	"github.com/will4381/comic-slideshows/internal/scenario"
	"github.com/will4381/comic-slideshows/pkg/config"
	"github.com/will4381/comic-slideshows/pkg/prompts"
)

// Service bundles the pipeline's collaborators. Both external clients are
// interface-typed so tests can substitute doubles.
type Service struct {
	cfg       *config.Config
	scenarios scenario.Source
	images    imagegen.Generator
	prompts   *prompts.Prompts
}

type ServiceOptions struct {
	Config    *config.Config
	Scenarios scenario.Source
	Images    imagegen.Generator
	Prompts   *prompts.Prompts
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:       opts.Config,
		scenarios: opts.Scenarios,
		images:    opts.Images,
		prompts:   opts.Prompts,
	}
}

func (s *Service) Config() *config.Config     { return s.cfg }
func (s *Service) Scenarios() scenario.Source { return s.scenarios }
func (s *Service) Images() imagegen.Generator { return s.images }
func (s *Service) Prompts() *prompts.Prompts  { return s.prompts }
