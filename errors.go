// SPDX-License-Identifier: EPL-2.0

package audiotar

import (
	"errors"
	"fmt"
)

var (
	// ErrInput is matched by every rejection of caller-supplied signals.
	ErrInput = errors.New("invalid input")

	ErrEmptyTarget   = fmt.Errorf("%w: empty target", ErrInput)
	ErrEmptyTemplate = fmt.Errorf("%w: empty template", ErrInput)

	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("audio I/O failed")

	// ErrUnsupportedFormat indicates a file extension with no registered decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// IOError records a failed file operation on a signal.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }
