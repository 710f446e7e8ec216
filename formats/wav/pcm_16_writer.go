// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audiotar/internal/pcm"
)

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
//
// The encoder patches the header sizes after the data is written, so a w
// that cannot seek is staged in memory first.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if ws, ok := w.(io.WriteSeeker); ok {
		return encode16(ws, sampleRate, samples)
	}

	staged := pcm.NewBuffer(make([]byte, 0, 44+2*len(samples)))
	if err := encode16(staged, sampleRate, samples); err != nil {
		return err
	}

	if _, err := w.Write(staged.Bytes()); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}

	return nil
}

func encode16(ws io.WriteSeeker, sampleRate int, samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, 1, formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
