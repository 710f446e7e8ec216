// SPDX-License-Identifier: EPL-2.0

package audiotar

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audiotar/decompose"
	"github.com/ik5/audiotar/stretch"
)

func sweep(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		out[i] = 0.6*math.Sin(2*math.Pi*5*t*t) + 0.2*math.Cos(2*math.Pi*17*t)
	}
	return out
}

func TestCombine_DegenerateBasis(t *testing.T) {
	t.Parallel()

	target := []float64{2, 2, 2, 2}
	var steps []decompose.Step

	out, residual, err := CombineResidual(target, []float64{1}, 1,
		WithTracer(func(s decompose.Step) { steps = append(steps, s) }))
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 0}, out)
	assert.Equal(t, []float64{2, 2, 2, 2}, residual)
	require.Len(t, steps, 1)
	assert.True(t, steps[0].Degenerate)
	assert.Zero(t, steps[0].Correlation)
}

func TestCombine_IdenticalSignals(t *testing.T) {
	t.Parallel()

	target := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	template := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	out, residual, err := CombineResidual(target, template, 1)
	require.NoError(t, err)

	assert.Equal(t, target, out)
	assert.Equal(t, make([]float64, 8), residual)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, target, "target must not be modified")
}

func TestCombine_OutputLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 7, 64, 100, 1001} {
		for _, m := range []int{1, 2, 5, 33} {
			for _, levels := range []int{1, 3, DefaultLevels} {
				out, err := Combine(sweep(n), sweep(m), levels)
				require.NoError(t, err)
				assert.Len(t, out, n, "n=%d m=%d levels=%d", n, m, levels)
			}
		}
	}
}

func TestCombine_ZeroLevels(t *testing.T) {
	t.Parallel()

	for _, levels := range []int{0, -3} {
		out, residual, err := CombineResidual(sweep(16), sweep(4), levels)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, 16), out)
		assert.Equal(t, sweep(16), residual)
	}
}

func TestCombine_ZeroTarget(t *testing.T) {
	t.Parallel()

	out, residual, err := CombineResidual(make([]float64, 50), sweep(7), DefaultLevels)
	require.NoError(t, err)

	assert.Equal(t, make([]float64, 50), out)
	assert.Equal(t, make([]float64, 50), residual)
}

func TestCombine_OutputPlusResidualIsTarget(t *testing.T) {
	t.Parallel()

	target := sweep(257)
	for _, mode := range []stretch.Mode{stretch.Floor, stretch.Linear, stretch.Cubic} {
		for _, split := range []decompose.Split{decompose.SplitShared, decompose.SplitExact} {
			out, residual, err := CombineResidual(target, sweep(13), DefaultLevels,
				WithMode(mode), WithSplit(split))
			require.NoError(t, err)

			for i := range target {
				assert.InDelta(t, target[i], out[i]+residual[i], 1e-9, "%s/%s i=%d", mode, split, i)
			}
		}
	}
}

func TestCombine_DepthBound(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 8, 9, 31, 100} {
		for _, levels := range []int{1, 2, 4, DefaultLevels} {
			deepest := 0
			_, err := Combine(sweep(n), sweep(3), levels, WithTracer(func(s decompose.Step) {
				deepest = max(deepest, s.Depth)
			}))
			require.NoError(t, err)
			assert.Equal(t, MaxDepth(n, levels), deepest, "n=%d levels=%d", n, levels)
		}
	}
}

func TestCombine_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	target, template := sweep(4096), sweep(100)

	want, err := Combine(target, template, DefaultLevels, WithSplit(decompose.SplitExact))
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		steps int
	)
	got, err := Combine(target, template, DefaultLevels,
		WithSplit(decompose.SplitExact),
		WithParallel(64),
		WithTracer(func(decompose.Step) {
			mu.Lock()
			steps++
			mu.Unlock()
		}))
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 2*4096-1, steps)
}

func TestCombine_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Combine([]float64{1, 2, 3, 4}, []float64{4, 3}, 1, WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "msg=match")
	assert.Contains(t, buf.String(), "correlation=")
}

func TestCombine_EmptyInputs(t *testing.T) {
	t.Parallel()

	_, err := Combine(nil, []float64{1}, 1)
	require.ErrorIs(t, err, ErrEmptyTarget)
	assert.ErrorIs(t, err, ErrInput)

	_, err = Combine([]float64{1}, []float64{}, 1)
	require.ErrorIs(t, err, ErrEmptyTemplate)
	assert.ErrorIs(t, err, ErrInput)
}

func TestCombine_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := Combine(sweep(8), sweep(4), 2, WithMode(stretch.Mode(42)))
	assert.ErrorIs(t, err, stretch.ErrUnknownMode)
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, levels, want int
	}{
		{0, 5, 0},
		{5, 0, 0},
		{5, -1, 0},
		{1, 18, 1},
		{2, 18, 2},
		{3, 18, 3},
		{4, 18, 3},
		{5, 18, 4},
		{8, 18, 4},
		{9, 18, 5},
		{1024, 18, 11},
		{1025, 18, 12},
		{1 << 20, 18, 18},
		{1000, 3, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxDepth(tt.n, tt.levels), "MaxDepth(%d, %d)", tt.n, tt.levels)
	}
}

func BenchmarkCombine(b *testing.B) {
	target, template := sweep(1<<15), sweep(441)

	for _, bc := range []struct {
		name string
		opts []Option
	}{
		{"sequential", nil},
		{"parallel", []Option{WithParallel(4096)}},
	} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Combine(target, template, DefaultLevels, bc.opts...)
			}
		})
	}
}
