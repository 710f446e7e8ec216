// SPDX-License-Identifier: EPL-2.0

package audiotar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audiotar/audio"
	"github.com/ik5/audiotar/formats/aiff"
	"github.com/ik5/audiotar/formats/vorbis"
	"github.com/ik5/audiotar/formats/wav"
	"github.com/ik5/audiotar/utils"
)

// Signal is a decoded mono recording.
type Signal struct {
	Samples    []float64
	SampleRate int
}

// DefaultRegistry maps the supported file extensions to their decoders.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// LoadMono decodes the single-channel file at path with the decoder reg
// holds for its extension. A nil reg means DefaultRegistry.
func LoadMono(path string, reg *audio.Registry) (Signal, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return Signal{}, &IOError{Op: "decode", Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return Signal{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return Signal{}, &IOError{Op: "decode", Path: path, Err: err}
	}
	defer src.Close()

	samples, err := audio.ReadMono(src)
	if err != nil {
		return Signal{}, &IOError{Op: "read", Path: path, Err: err}
	}

	return Signal{Samples: samples, SampleRate: src.SampleRate()}, nil
}

// SaveMono writes samples to path as a mono 16-bit PCM WAV. Samples are
// clamped to [-1, 1] before quantization.
func SaveMono(path string, sampleRate int, samples []float64) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInput, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, &IOError{Op: "close", Path: path, Err: cerr})
		}
	}()

	if err := wav.WriteWAV16(f, sampleRate, utils.FloatsToInt16(samples)); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}

	return nil
}
