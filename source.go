package main

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// sampleSource yields the sample a run describes together with its index
// sequence.
type sampleSource interface {
	Name() string
	Load(ctx context.Context) (sample, index []float64, err error)
	Close() error
}

type generatorSource struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

func newGeneratorSource(cfg GeneratorConfig, seed uint64) *generatorSource {
	return &generatorSource{cfg: cfg, rng: newRand(seed)}
}

func (s *generatorSource) Name() string { return sourceGenerate }

func (s *generatorSource) Load(ctx context.Context) ([]float64, []float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return generateSample(s.cfg, s.rng)
}

func (s *generatorSource) Close() error { return nil }

func openSource(ctx context.Context, cfg Config) (sampleSource, error) {
	switch cfg.Source {
	case sourceGenerate:
		return newGeneratorSource(cfg.Generator, cfg.Seed), nil
	case sourcePostgres:
		db, err := openPostgres(ctx)
		if err != nil {
			return nil, err
		}
		return &postgresSource{db: db, limit: cfg.Generator.SampleSize}, nil
	}
	return nil, errors.Wrapf(ErrInvalidConfig, "unknown source %q", cfg.Source)
}
