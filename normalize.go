package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// minMaxNormalize rescales sample onto [0, 1]. The input is not modified.
func minMaxNormalize(sample []float64) ([]float64, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	if floats.HasNaN(sample) {
		return nil, ErrNonFiniteSample
	}
	lo, hi := floats.Min(sample), floats.Max(sample)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, ErrNonFiniteSample
	}
	if hi == lo {
		return nil, ErrConstantSample
	}
	span := hi - lo
	if math.IsInf(span, 0) {
		return nil, ErrNonFiniteSample
	}
	out := make([]float64, len(sample))
	for i, v := range sample {
		out[i] = (v - lo) / span
	}
	return out, nil
}

// zScores standardizes sample with the same mean and population standard
// deviation the summary reports.
func zScores(sample []float64) ([]float64, error) {
	if len(sample) == 0 {
		return nil, ErrEmptySample
	}
	mean, sd, err := popMeanStdDev(sample)
	if err != nil {
		return nil, err
	}
	if floats.Min(sample) == floats.Max(sample) || sd == 0 {
		return nil, ErrConstantSample
	}
	out := make([]float64, len(sample))
	for i, v := range sample {
		out[i] = (v - mean) / sd
	}
	return out, nil
}
