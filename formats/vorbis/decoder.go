// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audiotar/audio"
)

// ErrNotVorbis indicates the stream could not be opened as Ogg Vorbis.
var ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

// oggReader is the part of oggvorbis.Reader a source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// ReadSamples decodes straight into dst. oggvorbis counts interleaved values,
// so dst is trimmed to whole frames first.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*s.channels])
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotVorbis, channels)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		bufSize:    4096 - 4096%channels,
	}, nil
}
