// SPDX-License-Identifier: EPL-2.0

package audiotar

import (
	"fmt"
	"log/slog"
	"math/bits"
	"slices"

	"github.com/ik5/audiotar/decompose"
	"github.com/ik5/audiotar/stretch"
)

// DefaultLevels is the recursion depth used when the caller has no
// preference. It exceeds MaxDepth for any target shorter than 2^17 samples,
// so such targets are decomposed down to single samples.
const DefaultLevels = 18

type config struct {
	mode     stretch.Mode
	split    decompose.Split
	logger   *slog.Logger
	tracer   decompose.Tracer
	parallel int
}

// Option configures Combine and CombineResidual.
type Option func(*config)

// WithMode sets the interpolation used both for the initial template
// stretch and for every level of the decomposition. Default stretch.Floor.
func WithMode(mode stretch.Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithSplit sets the odd-segment policy. Default decompose.SplitShared.
func WithSplit(split decompose.Split) Option {
	return func(c *config) {
		c.split = split
	}
}

// WithLogger receives one debug record per matched node.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer receives one Step per matched node.
func WithTracer(tracer decompose.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithParallel runs the halves of segments at least minSegment samples long
// concurrently. See decompose.WithParallel.
func WithParallel(minSegment int) Option {
	return func(c *config) {
		c.parallel = minSegment
	}
}

func (c *config) decomposer() *decompose.Decomposer {
	return decompose.New(
		decompose.WithMode(c.mode),
		decompose.WithSplit(c.split),
		decompose.WithLogger(c.logger),
		decompose.WithTracer(c.tracer),
		decompose.WithParallel(c.parallel),
	)
}

// Combine matches template against target for at most levels recursion
// levels and returns the accumulated matched signal. The output always has
// len(target) samples; levels <= 0 yields silence. Neither input is modified.
func Combine(target, template []float64, levels int, opts ...Option) ([]float64, error) {
	output, _, err := CombineResidual(target, template, levels, opts...)
	return output, err
}

// CombineResidual is Combine that also returns what was left of the target
// after every match was subtracted. output[i]+residual[i] equals target[i]
// up to rounding.
func CombineResidual(target, template []float64, levels int, opts ...Option) (output, residual []float64, err error) {
	if len(target) == 0 {
		return nil, nil, ErrEmptyTarget
	}
	if len(template) == 0 {
		return nil, nil, ErrEmptyTemplate
	}

	cfg := &config{mode: stretch.Floor, split: decompose.SplitShared}
	for _, opt := range opts {
		opt(cfg)
	}

	basis, err := stretch.Stretch(template, len(target), cfg.mode)
	if err != nil {
		return nil, nil, fmt.Errorf("stretching template: %w", err)
	}

	residual = slices.Clone(target)

	output, err = cfg.decomposer().Process(residual, basis, levels)
	if err != nil {
		return nil, nil, fmt.Errorf("decomposing: %w", err)
	}

	return output, residual, nil
}

// MaxDepth is the deepest recursion level reached when a signal of n
// samples is decomposed with the given levels. Odd splits make the longer
// half one sample longer than the shorter, so the bound is
// ceil(log2(n))+1 rather than floor(log2(n))+1.
func MaxDepth(n, levels int) int {
	if n <= 0 || levels <= 0 {
		return 0
	}

	return min(levels, bits.Len(uint(n-1))+1)
}
