// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrNotMono indicates a source with more than one channel where mono is required.
	ErrNotMono = errors.New("only mono sources are supported")

	// ErrStalled indicates a source that keeps returning no data and no error.
	ErrStalled = errors.New("source returned no data")
)
