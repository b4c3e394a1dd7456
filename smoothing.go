package siad

import (
	"fmt"
	"log/slog"

	"github.com/yyyoichi/siad/internal/smoothing"
)

// Forecast returns the trend-adjusted forecast F(t) of values.
// This is a convenience function that creates a TrendAdjustedExponentialSmoothing
// and calls its Forecast method.
func Forecast(values []float64, alpha, beta float64, t int, opts ...ForecastOption) (float64, error) {
	s, err := NewTrendAdjustedExponentialSmoothing(values, alpha, beta, opts...)
	if err != nil {
		return 0, err
	}
	return s.Forecast(t)
}

// TrendAdjustedExponentialSmoothing forecasts a series from a smoothed level
// and a smoothed trend. Both estimates are memoized per instance, so repeated
// queries are cheap and return identical results.
//
// It is not safe for concurrent use.
type TrendAdjustedExponentialSmoothing struct {
	f *smoothing.Forecaster

	logger *slog.Logger
}

// NewTrendAdjustedExponentialSmoothing returns a forecaster for values, which
// must hold at least two elements. alpha smooths the level and beta smooths the
// trend; both must lie in [0, 1]. The values are copied.
func NewTrendAdjustedExponentialSmoothing(values []float64, alpha, beta float64, opts ...ForecastOption) (*TrendAdjustedExponentialSmoothing, error) {
	s := new(TrendAdjustedExponentialSmoothing)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	f, err := smoothing.New(values, alpha, beta, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	s.f = f
	return s, nil
}

// Smooth returns the level estimate at index t, 0 <= t < len(values).
func (s *TrendAdjustedExponentialSmoothing) Smooth(t int) (float64, error) {
	return wrapInvalid(s.f.Smooth(t))
}

// Trend returns the trend estimate at index t, 0 <= t < len(values).
func (s *TrendAdjustedExponentialSmoothing) Trend(t int) (float64, error) {
	return wrapInvalid(s.f.Trend(t))
}

// Forecast returns Smooth(t-1) + Trend(t-1) for 1 <= t <= len(values).
func (s *TrendAdjustedExponentialSmoothing) Forecast(t int) (float64, error) {
	return wrapInvalid(s.f.Forecast(t))
}

// Constants returns a copy of the series, alpha and beta.
func (s *TrendAdjustedExponentialSmoothing) Constants() ([]float64, float64, float64) {
	return s.f.Constants()
}

func wrapInvalid(v float64, err error) (float64, error) {
	if err != nil {
		return 0, fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	return v, nil
}
