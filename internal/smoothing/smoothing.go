package smoothing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

var (
	ErrTooFewValues       = errors.New("at least two values are required")
	ErrConstantOutOfRange = errors.New("smoothing constant must be within [0, 1]")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// Forecaster is a trend-adjusted (double) exponential smoothing model over
// a fixed series. Level and trend estimates are memoized per index.
// A Forecaster is not safe for concurrent use.
type Forecaster struct {
	values      []float64
	alpha, beta float64

	levels *cache
	trends *cache
	logger *slog.Logger
}

// New returns a Forecaster for values with level constant alpha and
// trend constant beta.
func New(values []float64, alpha, beta float64, logger *slog.Logger) (*Forecaster, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewValues, len(values))
	}
	if !(0 <= alpha && alpha <= 1) {
		return nil, fmt.Errorf("%w: alpha=%v", ErrConstantOutOfRange, alpha)
	}
	if !(0 <= beta && beta <= 1) {
		return nil, fmt.Errorf("%w: beta=%v", ErrConstantOutOfRange, beta)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Forecaster{
		values: slices.Clone(values),
		alpha:  alpha,
		beta:   beta,
		levels: newCache(),
		trends: newCache(),
		logger: logger,
	}, nil
}

// Constants returns a copy of the series and the two smoothing constants.
func (f *Forecaster) Constants() ([]float64, float64, float64) {
	return slices.Clone(f.values), f.alpha, f.beta
}

// Smooth returns the level estimate S at index t, 0 <= t < len(values).
//
//	S(0) = Y(0)
//	S(t) = alpha*Y(t) + (1-alpha)*(S(t-1) + M(t-1))
func (f *Forecaster) Smooth(t int) (float64, error) {
	if err := f.check(t); err != nil {
		return 0, err
	}
	f.warm(t)
	return f.smooth(t), nil
}

// Trend returns the trend estimate M at index t, 0 <= t < len(values).
//
//	M(0) = Y(1) - Y(0)
//	M(t) = beta*(S(t) - S(t-1)) + (1-beta)*M(t-1)
func (f *Forecaster) Trend(t int) (float64, error) {
	if err := f.check(t); err != nil {
		return 0, err
	}
	f.warm(t)
	return f.trend(t), nil
}

// Forecast returns F(t) = S(t-1) + M(t-1) for 1 <= t <= len(values).
func (f *Forecaster) Forecast(t int) (float64, error) {
	if t < 1 || t > len(f.values) {
		return 0, fmt.Errorf("%w: forecast index %d not in [1, %d]", ErrIndexOutOfRange, t, len(f.values))
	}
	f.warm(t - 1)
	s, m := f.smooth(t-1), f.trend(t-1)
	f.logger.Debug("forecast", "t", t, "level", s, "trend", m, "result", s+m)
	return s + m, nil
}

func (f *Forecaster) check(t int) error {
	if t < 0 || t >= len(f.values) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfRange, t, len(f.values))
	}
	return nil
}

// warm fills the caches below t in index order so the recursion
// for t stays shallow on long series.
func (f *Forecaster) warm(t int) {
	for i := range t {
		f.smooth(i)
	}
}

func (f *Forecaster) smooth(t int) float64 {
	return f.levels.get(t, f.computeLevel)
}

func (f *Forecaster) trend(t int) float64 {
	return f.trends.get(t, f.computeTrend)
}

func (f *Forecaster) computeLevel(t int) float64 {
	if t == 0 {
		f.logger.Debug("level", "t", t, "result", f.values[0])
		return f.values[0]
	}
	prev, trend := f.smooth(t-1), f.trend(t-1)
	st := f.alpha*f.values[t] + (1-f.alpha)*(prev+trend)
	f.logger.Debug("level", "t", t, "alpha", f.alpha, "value", f.values[t],
		"previous", prev, "trend", trend, "result", st)
	return st
}

func (f *Forecaster) computeTrend(t int) float64 {
	if t == 0 {
		mt := f.values[1] - f.values[0]
		f.logger.Debug("trend", "t", t, "result", mt)
		return mt
	}
	st, prev, trend := f.smooth(t), f.smooth(t-1), f.trend(t-1)
	mt := f.beta*(st-prev) + (1-f.beta)*trend
	f.logger.Debug("trend", "t", t, "beta", f.beta, "level", st,
		"previous", prev, "trend", trend, "result", mt)
	return mt
}
