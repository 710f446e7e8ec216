// SPDX-License-Identifier: EPL-2.0

package decompose

import "errors"

var (
	// ErrLengthMismatch indicates the basis and residual passed to Process differ in length.
	ErrLengthMismatch = errors.New("basis and residual lengths differ")

	// ErrUnknownSplit indicates a split policy name ParseSplit does not know.
	ErrUnknownSplit = errors.New("unknown split policy")
)
