// SPDX-License-Identifier: EPL-2.0

package decompose

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ik5/audiotar/stretch"
)

// Split decides which basis each half of a segment is matched against.
type Split int

const (
	// SplitShared gives both halves the parent basis stretched to the first
	// half's length.
	SplitShared Split = iota
	// SplitExact stretches the parent basis to each half's own length.
	SplitExact
)

func (s Split) String() string {
	switch s {
	case SplitShared:
		return "shared"
	case SplitExact:
		return "exact"
	default:
		return fmt.Sprintf("Split(%d)", int(s))
	}
}

// ParseSplit maps "shared" or "exact" (case-insensitive) to a Split.
func ParseSplit(s string) (Split, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "":
		return SplitShared, nil
	case "exact":
		return SplitExact, nil
	default:
		return SplitShared, fmt.Errorf("%w: %q", ErrUnknownSplit, s)
	}
}

// Option configures a Decomposer.
type Option func(*Decomposer)

// WithMode sets the interpolation used to rescale the basis for each level.
func WithMode(mode stretch.Mode) Option {
	return func(d *Decomposer) {
		d.mode = mode
	}
}

// WithSplit sets the odd-segment policy.
func WithSplit(split Split) Option {
	return func(d *Decomposer) {
		d.split = split
	}
}

// WithLogger routes the per-node debug trace to logger. A nil logger
// restores the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decomposer) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		d.logger = logger
	}
}

// WithTracer registers a callback invoked once for every matched node.
func WithTracer(tracer Tracer) Option {
	return func(d *Decomposer) {
		d.tracer = tracer
	}
}

// WithParallel runs the two halves of any segment at least minSegment
// samples long on separate goroutines. Zero or a negative value keeps the
// whole run on the calling goroutine. The output does not depend on this
// setting; a Tracer must be safe for concurrent use when it is enabled.
func WithParallel(minSegment int) Option {
	return func(d *Decomposer) {
		d.parallel = max(minSegment, 0)
	}
}
