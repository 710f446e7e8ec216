// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/audiotar/utils"
)

// Mode selects how neighbouring source samples are blended.
type Mode int

const (
	// Floor is nearest-floor lookup; see the package documentation.
	Floor Mode = iota
	// Linear is two-point linear interpolation.
	Linear
	// Cubic is four-point Catmull-Rom interpolation.
	Cubic
)

func (m Mode) String() string {
	switch m {
	case Floor:
		return "floor"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "floor", "linear" or "cubic" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floor", "":
		return Floor, nil
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	default:
		return Floor, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Stretch returns src resized to length samples.
func Stretch(src []float64, length int, mode Mode) ([]float64, error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}

	out := make([]float64, length)
	if err := Into(out, src, mode); err != nil {
		return nil, err
	}
	return out, nil
}

// Into fills dst with src resized to len(dst) samples.
func Into(dst, src []float64, mode Mode) error {
	length := len(dst)
	if length == 0 {
		return nil
	}

	n := len(src)
	if n == 0 {
		return ErrEmptySource
	}

	if mode != Floor && mode != Linear && mode != Cubic {
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	scale := float64(n)
	for i := range dst {
		p := scale * float64(i) / float64(length)
		f := math.Floor(p)
		frac := p - f
		idx := utils.ClampIndex(int(f), n)

		switch mode {
		case Linear:
			dst[i] = src[idx]*(1-frac) + src[utils.ClampIndex(idx+1, n)]*frac
		case Cubic:
			dst[i] = utils.CubicInterpolate(
				src[utils.ClampIndex(idx-1, n)],
				src[idx],
				src[utils.ClampIndex(idx+1, n)],
				src[utils.ClampIndex(idx+2, n)],
				frac,
			)
		case Floor:
			dst[i] = src[idx]*(1-frac) + src[utils.ClampIndex(idx, n)]*frac
		}
	}

	return nil
}
