// SPDX-License-Identifier: EPL-2.0

package stretch

import "errors"

var (
	// ErrEmptySource indicates a non-empty result was requested from an empty source.
	ErrEmptySource = errors.New("cannot stretch an empty source")

	// ErrNegativeLength indicates a negative target length.
	ErrNegativeLength = errors.New("target length must not be negative")

	// ErrUnknownMode indicates a Mode value or name that is not Floor, Linear or Cubic.
	ErrUnknownMode = errors.New("unknown interpolation mode")
)
