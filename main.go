package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

func main() {
	// Optional local overrides; the defaults need no environment at all.
	_ = godotenv.Load(".env")

	cfg, err := loadConfig()
	logger := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		level.Error(logger).Log("msg", "config error", "err", err)
		os.Exit(1)
	}
	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level.Info(logger).Log(
		"msg", "config loaded",
		"source", cfg.Source,
		"sample_size", cfg.Generator.SampleSize,
		"mean", cfg.Generator.Mean,
		"spread", cfg.Generator.Spread,
		"bins", cfg.Bins,
		"confidence", cfg.Confidence,
		"seed", cfg.Seed,
		"seed_from_env", cfg.SeedFromEnv,
	)

	src, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	return runPipeline(ctx, cfg, src, logger, os.Stdout)
}
