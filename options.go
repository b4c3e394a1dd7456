package siad

import (
	"fmt"
	"log/slog"
	"math/rand"
)

type (
	// Option configures a KMeans.
	Option func(*KMeans) error

	// ForecastOption configures a TrendAdjustedExponentialSmoothing.
	ForecastOption func(*TrendAdjustedExponentialSmoothing) error
)

// WithSeed seeds the centroid initialization. The same seed over the same
// points always yields the same clusters. Defaults to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(km *KMeans) error {
		km.seed = seed
		return nil
	}
}

// WithRand uses rd as the random source for centroid initialization.
// It takes precedence over WithSeed.
func WithRand(rd *rand.Rand) Option {
	return func(km *KMeans) error {
		if rd == nil {
			return fmt.Errorf("%w: nil random source", ErrInvalidArgument)
		}
		km.rd = rd
		return nil
	}
}

// WithIterations sets the iteration count used by Clustering.
func WithIterations(n int) Option {
	return func(km *KMeans) error {
		if n < 0 {
			return fmt.Errorf("%w: iterations=%d", ErrInvalidArgument, n)
		}
		km.iterations = n
		return nil
	}
}

// WithLogger receives the initial centroids and the centroid positions after
// each iteration at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(km *KMeans) error {
		km.logger = logger
		return nil
	}
}

// WithForecastLogger receives every level, trend and forecast computation
// at debug level.
func WithForecastLogger(logger *slog.Logger) ForecastOption {
	return func(s *TrendAdjustedExponentialSmoothing) error {
		s.logger = logger
		return nil
	}
}
