package smoothing

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demand = []float64{54, 63, 73, 73, 49, 47}

func TestNew(t *testing.T) {
	test := []struct {
		name        string
		values      []float64
		alpha, beta float64
		err         error
	}{
		{"ok", demand, 0.5, 0.07, nil},
		{"bounds", demand, 0, 1, nil},
		{"empty", nil, 0.5, 0.5, ErrTooFewValues},
		{"single", []float64{1}, 0.5, 0.5, ErrTooFewValues},
		{"alpha_negative", demand, -0.1, 0.5, ErrConstantOutOfRange},
		{"alpha_large", demand, 1.1, 0.5, ErrConstantOutOfRange},
		{"beta_large", demand, 0.5, 2, ErrConstantOutOfRange},
		{"alpha_nan", demand, math.NaN(), 0.5, ErrConstantOutOfRange},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.values, tt.alpha, tt.beta, nil)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestForecaster(t *testing.T) {
	f, err := New(demand, 0.5, 0.07, nil)
	require.NoError(t, err)

	levels := []float64{54, 63, 72.5}
	trends := []float64{9, 9, 9.035}
	for i := range levels {
		s, err := f.Smooth(i)
		require.NoError(t, err)
		assert.InDelta(t, levels[i], s, 1e-9, "S(%d)", i)
		m, err := f.Trend(i)
		require.NoError(t, err)
		assert.InDelta(t, trends[i], m, 1e-9, "M(%d)", i)
	}

	got, err := f.Forecast(2)
	require.NoError(t, err)
	assert.InDelta(t, 72, got, 1e-9)
	got, err = f.Forecast(3)
	require.NoError(t, err)
	assert.InDelta(t, 81.535, got, 1e-9)
}

func TestForecaster_OutOfRange(t *testing.T) {
	f, err := New(demand, 0.5, 0.07, nil)
	require.NoError(t, err)

	for _, i := range []int{-1, len(demand), len(demand) + 10} {
		_, err := f.Smooth(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = f.Trend(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	for _, i := range []int{-1, 0, len(demand) + 1} {
		_, err := f.Forecast(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	_, err = f.Forecast(len(demand))
	assert.NoError(t, err)
}

func TestForecaster_Memoized(t *testing.T) {
	f, err := New(demand, 0.5, 0.07, nil)
	require.NoError(t, err)

	first, err := f.Smooth(5)
	require.NoError(t, err)
	levels, trends := f.levels.computed, f.trends.computed
	assert.Equal(t, 6, levels)
	assert.Equal(t, 5, trends)

	second, err := f.Smooth(5)
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(first), math.Float64bits(second))
	assert.Equal(t, levels, f.levels.computed)
	assert.Equal(t, trends, f.trends.computed)

	// every earlier index is already warm.
	for i := range 5 {
		_, err := f.Smooth(i)
		require.NoError(t, err)
		_, err = f.Trend(i)
		require.NoError(t, err)
	}
	assert.Equal(t, levels, f.levels.computed)
	assert.Equal(t, trends, f.trends.computed)
}

func TestForecaster_InstancesIndependent(t *testing.T) {
	a, err := New(demand, 0.5, 0.07, nil)
	require.NoError(t, err)
	b, err := New(demand, 0.9, 0.9, nil)
	require.NoError(t, err)

	fa, err := a.Forecast(4)
	require.NoError(t, err)
	fb, err := b.Forecast(4)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)

	again, err := a.Forecast(4)
	require.NoError(t, err)
	assert.Equal(t, fa, again)
}

func TestForecaster_Constants(t *testing.T) {
	values := []float64{1, 2, 3}
	f, err := New(values, 0.3, 0.4, nil)
	require.NoError(t, err)
	values[0] = 100

	v, alpha, beta := f.Constants()
	assert.Equal(t, []float64{1, 2, 3}, v)
	assert.Equal(t, 0.3, alpha)
	assert.Equal(t, 0.4, beta)
}

func TestForecaster_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f, err := New(demand, 0.5, 0.07, logger)
	require.NoError(t, err)
	_, err = f.Forecast(3)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=level")
	assert.Contains(t, buf.String(), "msg=trend")
	assert.Contains(t, buf.String(), "msg=forecast")
}
