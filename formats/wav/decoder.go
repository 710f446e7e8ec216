// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audiotar/audio"
	"github.com/ik5/audiotar/internal/pcm"
)

// formatPCM is the WAVE_FORMAT_PCM tag.
const formatPCM = 1

// unsigned8 recenters 8-bit WAV data, which is stored unsigned.
type unsigned8 struct {
	pcm.Reader
}

func (u unsigned8) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n, err := u.Reader.PCMBuffer(buf)
	for i := range n {
		buf.Data[i] -= 128
	}
	return n, err
}

type Decoder struct{}

// Decode parses the WAV header from r and returns a source positioned at the
// first sample. r is buffered in memory when it cannot seek.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.AsReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	if dec.Format() == nil {
		return nil, ErrUnsupportedWavLayout
	}

	var reader pcm.Reader = dec
	if dec.BitDepth == 8 {
		reader = unsigned8{dec}
	}

	src, err := pcm.NewSource(reader, int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("wav: %w", err)
	}

	return src, nil
}
