package manifest

import (
	"context"

	"sokohub/catalog/internal/domain"
	"sokohub/catalog/internal/generator"

	"github.com/benbjohnson/clock"
)

// GenerateSource adapts the datastore generator to the Source interface,
// supplying the classification timestamp from the injected clock.
type GenerateSource struct {
	generator *generator.Generator
	clk       clock.Clock
}

func NewGenerateSource(gen *generator.Generator, clk clock.Clock) *GenerateSource {
	if clk == nil {
		clk = clock.New()
	}
	return &GenerateSource{
		generator: gen,
		clk:       clk,
	}
}

func (s *GenerateSource) Name() string {
	return "database"
}

func (s *GenerateSource) FetchManifest(ctx context.Context) (*domain.Manifest, error) {
	return s.generator.Generate(ctx, s.clk.Now())
}
