// SPDX-License-Identifier: EPL-2.0

// Package audio defines the Source and Decoder abstractions the format
// packages implement, and turns sources into float64 signals.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved float32 samples in [-1, 1] and
// returns the number of values written. A source is finished when it
// returns io.EOF.
//
// # Collecting Samples
//
// ReadAll drains a source into a []float64. ReadMono does the same but
// first rejects anything that is not single channel:
//
//	samples, err := audio.ReadMono(src)
//	if errors.Is(err, audio.ErrNotMono) {
//	    // stereo or multi-channel input
//	}
//
// A source that keeps returning no data without io.EOF is abandoned with
// ErrStalled.
//
// # Format Registry
//
// Registry maps file extensions to decoders. Keys are case-insensitive and
// a leading dot is ignored, so filepath.Ext output can be used directly:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get(filepath.Ext(path))
//
// Registry is safe for concurrent use.
package audio
