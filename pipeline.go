package main

import (
	"context"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// runPipeline loads a sample from src, derives the normalized and z-score
// series, computes the summary, renders the plots and finally prints the
// report to out. Nothing is printed unless every stage succeeded.
func runPipeline(ctx context.Context, cfg Config, src sampleSource, logger log.Logger, out io.Writer) error {
	sample, index, err := src.Load(ctx)
	if err != nil {
		return errors.Wrapf(err, "load sample from %s", src.Name())
	}
	level.Info(logger).Log("msg", "sample loaded", "source", src.Name(), "count", len(sample))

	normalized, err := minMaxNormalize(sample)
	if err != nil {
		return errors.Wrap(err, "min-max normalize")
	}
	z, err := zScores(sample)
	if err != nil {
		return errors.Wrap(err, "z-scores")
	}

	summary, elapsed, peak, err := measurePeakResidentMemory(func() (Summary, error) {
		return calculateStatistics(sample, cfg.Confidence)
	})
	if err != nil {
		return errors.Wrap(err, "calculate statistics")
	}
	level.Debug(logger).Log("msg", "statistics calculated", "duration", elapsed, "peak_rss_bytes", int64(peak))

	if err := ctx.Err(); err != nil {
		return err
	}
	paths, err := renderPlots(cfg.PlotDir, Series{
		Index:      index,
		Sample:     sample,
		Normalized: normalized,
		ZScores:    z,
	}, cfg.Bins)
	if err != nil {
		return errors.Wrap(err, "render plots")
	}
	for _, p := range paths {
		level.Info(logger).Log("msg", "plot written", "path", p)
	}

	return writeReport(out, summary)
}
