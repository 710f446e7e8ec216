// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory audio sources for tests.
//
// The sources implement audio.Source without importing it, so the audio
// package can use them in its own tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved samples from a waveform function.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	chunk        int // max frames per read, 0 = unlimited
	waveform     func(sample int, channel int) float32
	readErr      error
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0
	})
}

// NewSineSource creates a sine wave source.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSliceSource creates a mono source replaying samples.
func NewSliceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(sample int, _ int) float32 {
		return samples[sample]
	})
}

// WithChunk limits every read to at most frames frames, to exercise callers
// that must loop over short reads.
func (m *MockSource) WithChunk(frames int) *MockSource {
	m.chunk = frames
	return m
}

// WithError makes every read after the first fail with err.
func (m *MockSource) WithError(err error) *MockSource {
	m.readErr = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.readErr != nil && m.generated > 0 {
		return 0, m.readErr
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.chunk > 0 {
		frames = min(frames, m.chunk)
	}

	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalSamples {
		return n, io.EOF
	}

	return n, nil
}

// StallingSource never produces data and never reports an error.
type StallingSource struct{}

func (StallingSource) SampleRate() int                  { return 8000 }
func (StallingSource) Channels() int                    { return 1 }
func (StallingSource) BufSize() int                     { return 4096 }
func (StallingSource) Close() error                     { return nil }
func (StallingSource) ReadSamples([]float32) (int, error) { return 0, nil }
