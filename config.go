package dataeval

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrInvalidInput is returned when a feature matrix has the wrong shape
	// or contains non-finite values.
	ErrInvalidInput = errors.New("dataeval: invalid input")

	// ErrInvalidConfig is returned when a Config or Method is not usable.
	ErrInvalidConfig = errors.New("dataeval: invalid config")

	// ErrInvalidLabels is returned when a label vector does not match its
	// data or has an unsupported number of classes.
	ErrInvalidLabels = errors.New("dataeval: invalid labels")
)

// Method selects the graph statistic used by BER and Divergence.
type Method string

const (
	// MethodMST counts minimum spanning tree edges joining differently
	// labelled samples (Friedman-Rafsky statistic).
	MethodMST Method = "MST"

	// MethodFNN counts samples whose first nearest neighbour carries a
	// different label.
	MethodFNN Method = "FNN"
)

// Config controls how distances are computed.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance function between two samples.
	// Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for the pairwise
	// distance matrix. Results are identical for every value.
	// Must be >= 0. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// prepareConfig validates cfg and then fills in its defaults.
func prepareConfig(cfg Config) (Config, error) {
	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func validateMethod(m Method) error {
	switch m {
	case MethodMST, MethodFNN:
		return nil
	default:
		return fmt.Errorf("%w: method must be %q or %q, got %q", ErrInvalidConfig, MethodMST, MethodFNN, m)
	}
}
