// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audiotar/formats/vorbis"
)

// ExampleDecoder_Decode_errorHandling shows how a non-Ogg stream is reported.
func ExampleDecoder_Decode_errorHandling() {
	_, err := vorbis.Decoder{}.Decode(bytes.NewReader([]byte("RIFF....WAVE")))

	fmt.Println(errors.Is(err, vorbis.ErrNotVorbis))
	// Output: true
}
