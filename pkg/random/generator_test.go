package random

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("succeeds within bounds when the policy does not fail", rapid.MakeCheck(func(t *rapid.T) {
		a := rapid.IntRange(math.MinInt, math.MaxInt).Draw(t, "a")
		b := rapid.IntRange(math.MinInt, math.MaxInt).Draw(t, "b")
		bounds := Bounds{Min: min(a, b), Max: max(a, b)}

		g, err := NewGenerator(WithPolicy(Never()))
		require.NoError(t, err)

		res := g.Generate(bounds)
		require.True(t, res.OK())
		assert.GreaterOrEqual(t, res.Value, bounds.Min)
		assert.LessOrEqual(t, res.Value, bounds.Max)
	}))

	t.Run("single value range always returns that value", func(t *testing.T) {
		t.Parallel()

		g, err := NewGenerator()
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			res := g.Generate(Bounds{Min: 1, Max: 1})
			require.NoError(t, res.Err)
			assert.Equal(t, 1, res.Value)
		}
	})

	t.Run("fails with the simulated error when the policy fails", func(t *testing.T) {
		t.Parallel()

		g, err := NewGenerator(WithPolicy(Always()))
		require.NoError(t, err)

		res := g.Generate(DefaultBounds)
		assert.False(t, res.OK())
		assert.ErrorIs(t, res.Err, ErrSimulatedFailure)
		assert.Equal(t, "Random error occurred (simulated)", res.Err.Error())
	})

	t.Run("rejects inverted bounds", func(t *testing.T) {
		t.Parallel()

		g, err := NewGenerator()
		require.NoError(t, err)

		res := g.Generate(Bounds{Min: 10, Max: 1})
		assert.ErrorIs(t, res.Err, ErrInvalidRange)
	})

	t.Run("accepts ranges spanning every int", func(t *testing.T) {
		t.Parallel()

		g, err := NewGenerator()
		require.NoError(t, err)

		for _, b := range []Bounds{{0, math.MaxInt}, {math.MinInt, math.MaxInt}, {-1, math.MaxInt - 1}} {
			res := g.Generate(b)
			require.NoError(t, res.Err, "bounds %+v", b)
			assert.GreaterOrEqual(t, res.Value, b.Min)
			assert.LessOrEqual(t, res.Value, b.Max)
		}
	})

	t.Run("draws from the configured source", func(t *testing.T) {
		t.Parallel()

		g, err := NewGenerator(WithSource(fixedSource(99)))
		require.NoError(t, err)

		assert.Equal(t, 100, g.Generate(DefaultBounds).Value)
	})
}

func TestGenerator_Metrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()

	fail := false
	g, err := NewGenerator(
		WithRegisterer(reg),
		WithPolicy(func() bool { return fail }),
	)
	require.NoError(t, err)

	g.Generate(DefaultBounds)
	g.Generate(DefaultBounds)
	fail = true
	g.Generate(DefaultBounds)

	assert.Equal(t, 2.0, testutil.ToFloat64(g.metrics.generations.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.metrics.generations.WithLabelValues("failure")))

	_, err = NewGenerator(WithRegisterer(reg))
	assert.Error(t, err, "registering the same metrics twice should fail")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	res := Generate(DefaultBounds, 1700000003)
	require.True(t, res.OK())
	assert.GreaterOrEqual(t, res.Value, 1)
	assert.LessOrEqual(t, res.Value, 100)

	res = Generate(DefaultBounds, 1700000000)
	assert.ErrorIs(t, res.Err, ErrSimulatedFailure)

	res = Generate(Bounds{Min: 1, Max: 1}, 7)
	assert.Equal(t, Result{Value: 1}, res)
}
