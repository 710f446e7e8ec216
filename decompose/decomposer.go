// SPDX-License-Identifier: EPL-2.0

package decompose

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ik5/audiotar/stats"
	"github.com/ik5/audiotar/stretch"
)

// Decomposer runs the recursive matcher. It holds configuration only and
// may be shared between goroutines.
type Decomposer struct {
	mode     stretch.Mode
	split    Split
	logger   *slog.Logger
	tracer   Tracer
	parallel int
}

// New returns a Decomposer using Floor interpolation, SplitShared and a
// discarding logger unless overridden by opts.
func New(opts ...Option) *Decomposer {
	d := &Decomposer{
		mode:   stretch.Floor,
		split:  SplitShared,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Process matches basis against residual for level recursion levels.
// residual is modified in place: on return it holds what was left
// unmatched. The returned output has len(residual) samples and holds the
// matched contribution of every level.
func (d *Decomposer) Process(residual, basis []float64, level int) ([]float64, error) {
	if len(basis) != len(residual) {
		return nil, fmt.Errorf("%w: residual has %d samples, basis has %d",
			ErrLengthMismatch, len(residual), len(basis))
	}

	r := &run{
		Decomposer: d,
		residual:   residual,
		output:     make([]float64, len(residual)),
	}

	if err := r.process(segment{start: 0, length: len(residual)}, basis, level, 1); err != nil {
		return nil, err
	}

	return r.output, nil
}

// run owns the buffers of a single Process call.
type run struct {
	*Decomposer

	residual []float64
	output   []float64
}

func (r *run) process(seg segment, basis []float64, level, depth int) error {
	if level <= 0 || seg.length == 0 {
		return nil
	}

	res := r.residual[seg.start:seg.end()]
	out := r.output[seg.start:seg.end()]

	corr := stats.Correlation(res, basis)
	degenerate := !stats.Finite(corr)
	if degenerate {
		corr = 0
	}

	r.trace(Step{
		Depth:       depth,
		Level:       level,
		Start:       seg.start,
		Length:      seg.length,
		BasisLength: len(basis),
		Correlation: corr,
		Degenerate:  degenerate,
	})

	if !degenerate {
		// basis may be one sample short of res; that sample stays unmatched.
		n := min(len(res), len(basis))
		for j := range n {
			m := basis[j] * corr
			res[j] -= m
			out[j] += m
		}
	}

	if seg.length/2 == 0 {
		return nil
	}

	left, right := seg.halves()
	leftBasis, rightBasis, err := r.childBases(basis, left, right)
	if err != nil {
		return err
	}

	if r.parallel > 0 && seg.length >= r.parallel {
		var (
			wg      sync.WaitGroup
			leftErr error
		)
		wg.Go(func() {
			leftErr = r.process(left, leftBasis, level-1, depth+1)
		})
		rightErr := r.process(right, rightBasis, level-1, depth+1)
		wg.Wait()

		return errors.Join(leftErr, rightErr)
	}

	if err := r.process(left, leftBasis, level-1, depth+1); err != nil {
		return err
	}
	return r.process(right, rightBasis, level-1, depth+1)
}

// childBases rescales the node's basis for its two halves.
func (r *run) childBases(basis []float64, left, right segment) ([]float64, []float64, error) {
	leftBasis, err := stretch.Stretch(basis, left.length, r.mode)
	if err != nil {
		return nil, nil, fmt.Errorf("rescaling basis to %d samples: %w", left.length, err)
	}

	if r.split != SplitExact {
		return leftBasis, leftBasis, nil
	}

	rightBasis, err := stretch.Stretch(basis, right.length, r.mode)
	if err != nil {
		return nil, nil, fmt.Errorf("rescaling basis to %d samples: %w", right.length, err)
	}

	return leftBasis, rightBasis, nil
}

func (r *run) trace(step Step) {
	r.logger.Debug("match",
		slog.Int("depth", step.Depth),
		slog.Int("levels_left", step.Level),
		slog.Int("start", step.Start),
		slog.Int("length", step.Length),
		slog.Float64("correlation", step.Correlation),
		slog.Bool("degenerate", step.Degenerate),
	)

	if r.tracer != nil {
		r.tracer(step)
	}
}
