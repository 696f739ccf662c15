package main

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	sourceGenerate = "generate"
	sourcePostgres = "postgres"
)

// Config holds everything a run needs. The zero-env defaults reproduce the
// classic demo: N(0, 1), 1000 observations, 20 bins, 95% interval.
type Config struct {
	Generator   GeneratorConfig
	Bins        int
	Confidence  float64
	Seed        uint64
	SeedFromEnv bool
	PlotDir     string
	Source      string
	LogLevel    string
}

func defaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			Mean:       0,
			Spread:     1,
			SampleSize: 1000,
		},
		Bins:       20,
		Confidence: 0.95,
		PlotDir:    "plots",
		Source:     sourceGenerate,
		LogLevel:   "info",
	}
}

func loadConfig() (Config, error) {
	cfg := defaultConfig()
	var err error

	if cfg.Generator.Mean, err = envFloat("STATS_MEAN", cfg.Generator.Mean); err != nil {
		return cfg, err
	}
	if cfg.Generator.Spread, err = envFloat("STATS_SPREAD", cfg.Generator.Spread); err != nil {
		return cfg, err
	}
	if cfg.Generator.SampleSize, err = envInt("STATS_SAMPLE_SIZE", cfg.Generator.SampleSize); err != nil {
		return cfg, err
	}
	if cfg.Bins, err = envInt("STATS_BINS", cfg.Bins); err != nil {
		return cfg, err
	}
	if cfg.Confidence, err = envFloat("STATS_CONFIDENCE", cfg.Confidence); err != nil {
		return cfg, err
	}

	if raw := strings.TrimSpace(os.Getenv("STATS_SEED")); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(ErrInvalidConfig, "STATS_SEED=%q: %v", raw, err)
		}
		cfg.Seed = seed
		cfg.SeedFromEnv = true
	} else {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if v := os.Getenv("STATS_PLOT_DIR"); v != "" {
		cfg.PlotDir = v
	}
	if v := os.Getenv("STATS_SOURCE"); v != "" {
		cfg.Source = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if err := c.Generator.validate(); err != nil {
		return err
	}
	if c.Bins < 0 {
		return errors.Wrapf(ErrInvalidConfig, "bins must not be negative, got %d", c.Bins)
	}
	if err := validateConfidence(c.Confidence); err != nil {
		return err
	}
	switch c.Source {
	case sourceGenerate, sourcePostgres:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown source %q", c.Source)
	}
	if _, ok := levelOption(c.LogLevel); !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}

func validateConfidence(c float64) error {
	if math.IsNaN(c) || c <= 0 || c >= 1 {
		return errors.Wrapf(ErrInvalidConfig, "confidence must be in (0, 1), got %v", c)
	}
	return nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback, errors.Wrapf(ErrInvalidConfig, "%s=%q: not a number", key, raw)
	}
	return v, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, errors.Wrapf(ErrInvalidConfig, "%s=%q: not an integer", key, raw)
	}
	return v, nil
}
