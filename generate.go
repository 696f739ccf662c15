package main

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// GeneratorConfig describes the normal distribution a synthetic sample is
// drawn from.
type GeneratorConfig struct {
	Mean       float64
	Spread     float64
	SampleSize int
}

func (c GeneratorConfig) validate() error {
	if c.SampleSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "sample size must be positive, got %d", c.SampleSize)
	}
	if math.IsNaN(c.Spread) || math.IsInf(c.Spread, 0) || c.Spread <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "spread must be a positive number, got %v", c.Spread)
	}
	if math.IsNaN(c.Mean) || math.IsInf(c.Mean, 0) {
		return errors.Wrapf(ErrInvalidConfig, "mean must be finite, got %v", c.Mean)
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// generateSample draws cfg.SampleSize independent values from
// N(cfg.Mean, cfg.Spread) using rng, and the matching index sequence.
func generateSample(cfg GeneratorConfig, rng *rand.Rand) (sample, index []float64, err error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	sample = make([]float64, cfg.SampleSize)
	for i := range sample {
		sample[i] = cfg.Mean + cfg.Spread*rng.NormFloat64()
	}
	return sample, indexSequence(cfg.SampleSize), nil
}

// indexSequence returns n evenly spaced values from 0 to n inclusive.
func indexSequence(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	step := float64(n) / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = float64(n)
	return out
}
