// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads are tolerated
// before a source is considered stalled.
const maxEmptyReads = 64

// ReadAll drains src and returns every interleaved sample widened to
// float64. The source is read until io.EOF; it is not closed.
func ReadAll(src Source) ([]float64, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 1 {
		// keep reads frame aligned
		bufSize -= bufSize % ch
		if bufSize == 0 {
			bufSize = ch
		}
	}

	buf := make([]float32, bufSize)
	out := make([]float64, 0, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		for _, x := range buf[:n] {
			out = append(out, float64(x))
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrStalled
			}
			continue
		}
		empty = 0
	}
}

// ReadMono drains a single-channel source. Sources with any other channel
// count are rejected with ErrNotMono before anything is read.
func ReadMono(src Source) ([]float64, error) {
	if ch := src.Channels(); ch != 1 {
		return nil, fmt.Errorf("%w: source has %d channels", ErrNotMono, ch)
	}

	return ReadAll(src)
}
