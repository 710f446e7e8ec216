// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audiotar/formats/aiff"
)

// ExampleDecoder_Decode_errorHandling shows how non-AIFF input is reported.
func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("not an aiff")))

	fmt.Println(errors.Is(err, aiff.ErrNotAiffFile))
	// Output: true
}
