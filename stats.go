package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Above this many observations the mean interval uses the normal quantile
// instead of Student's t.
const normalApproxThreshold = 1000

type Summary struct {
	Count     int
	Mean      float64
	Median    float64
	Mode      float64
	ModeCount int
	Min       float64
	Max       float64
	Range     float64
	Q1        float64
	Q3        float64
	IQR       float64
	StdDev    float64
	StdErr    float64

	Confidence float64
	CILower    float64
	CIUpper    float64
}

// calculateStatistics describes sample. StdDev is the population standard
// deviation and StdErr is StdDev/sqrt(N). The mean interval is
// mean ± q·s/sqrt(N) with s the N-1 standard deviation and q the Student-t
// quantile on N-1 degrees of freedom, which equals the Jeffreys-prior
// Bayesian credible interval for the mean. Past normalApproxThreshold the
// normal quantile with StdDev/sqrt(N) is used instead.
//
// The mode is compared with exact float equality and ties resolve to the
// smallest value, so for continuous data it is usually the minimum with a
// count of 1.
func calculateStatistics(sample []float64, confidence float64) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, ErrEmptySample
	}
	if err := validateConfidence(confidence); err != nil {
		return Summary{}, err
	}
	s := append([]float64(nil), sample...)
	sort.Float64s(s)
	n := len(s)
	min := s[0]
	max := s[n-1]

	mean, stddev, err := popMeanStdDev(s)
	if err != nil {
		return Summary{}, err
	}
	if math.IsInf(max-min, 0) {
		return Summary{}, ErrNonFiniteSample
	}

	var median float64
	if n%2 == 1 {
		median = s[n/2]
	} else {
		median = (s[n/2-1] + s[n/2]) / 2.0
	}

	mode, modeCount := modeOf(s)
	q1 := quantile(s, 0.25)
	q3 := quantile(s, 0.75)
	lower, upper := meanInterval(mean, stddev, n, confidence)

	return Summary{
		Count:      n,
		Mean:       mean,
		Median:     median,
		Mode:       mode,
		ModeCount:  modeCount,
		Min:        min,
		Max:        max,
		Range:      max - min,
		Q1:         q1,
		Q3:         q3,
		IQR:        q3 - q1,
		StdDev:     stddev,
		StdErr:     stddev / math.Sqrt(float64(n)),
		Confidence: confidence,
		CILower:    lower,
		CIUpper:    upper,
	}, nil
}

// popMeanStdDev returns the mean and population standard deviation of x,
// failing when either is not finite.
func popMeanStdDev(x []float64) (mean, stddev float64, err error) {
	mean, stddev = stat.PopMeanStdDev(x, nil)
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return 0, 0, ErrNonFiniteSample
	}
	return mean, stddev, nil
}

// quantile interpolates linearly between the order statistics around
// position (N-1)·p. sorted must be ascending and non-empty.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	if i < 0 {
		return sorted[0]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// modeOf returns the most frequent value of an ascending slice and its count.
func modeOf(sorted []float64) (float64, int) {
	value, count := sorted[0], 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		if run > count {
			value, count = sorted[i], run
		}
	}
	return value, count
}

// meanInterval collapses to [mean, mean] when there is no spread to
// estimate from.
func meanInterval(mean, popStdDev float64, n int, confidence float64) (lower, upper float64) {
	if n < 2 || popStdDev == 0 {
		return mean, mean
	}
	p := (1 + confidence) / 2

	var margin float64
	if n > normalApproxThreshold {
		margin = distuv.UnitNormal.Quantile(p) * popStdDev / math.Sqrt(float64(n))
	} else {
		// popStdDev/sqrt(n-1) == s/sqrt(n) with s the N-1 standard deviation.
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(p)
		margin = t * popStdDev / math.Sqrt(float64(n-1))
	}
	return mean - margin, mean + margin
}
