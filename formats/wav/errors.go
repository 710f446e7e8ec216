// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE stream go-audio can parse.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrNotPCM indicates a WAV whose format tag is not integer PCM.
	ErrNotPCM = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedWavLayout indicates a header go-audio accepted but reported no format for.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
)
