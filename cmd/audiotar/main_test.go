// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audiotar"
	"github.com/ik5/audiotar/audio"
	"github.com/ik5/audiotar/stretch"
)

func writeInputs(t *testing.T) (dir, target, template string) {
	t.Helper()

	dir = t.TempDir()
	target = filepath.Join(dir, "target.wav")
	template = filepath.Join(dir, "template.wav")

	require.NoError(t, audiotar.SaveMono(target, 16000, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}))
	require.NoError(t, audiotar.SaveMono(template, 16000, []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}))

	return dir, target, template
}

func TestRun_IdenticalInputs(t *testing.T) {
	t.Parallel()

	dir, target, template := writeInputs(t)
	output := filepath.Join(dir, "out.wav")

	var stderr bytes.Buffer
	require.NoError(t, run([]string{"-levels", "1", target, template, output}, &stderr))
	assert.Empty(t, stderr.String())

	in, err := audiotar.LoadMono(target, nil)
	require.NoError(t, err)
	out, err := audiotar.LoadMono(output, nil)
	require.NoError(t, err)

	assert.Equal(t, 16000, out.SampleRate)
	require.Len(t, out.Samples, len(in.Samples))
	for i := range in.Samples {
		assert.InDelta(t, in.Samples[i], out.Samples[i], 1e-4, "sample %d", i)
	}
}

func TestRun_Flags(t *testing.T) {
	t.Parallel()

	dir, target, template := writeInputs(t)
	output := filepath.Join(dir, "out.wav")

	var stderr bytes.Buffer
	err := run([]string{
		"-rate", "44100", "-interp", "cubic", "-split", "exact", "-parallel", "2", "-v",
		target, template, output,
	}, &stderr)
	require.NoError(t, err)

	out, err := audiotar.LoadMono(output, nil)
	require.NoError(t, err)
	assert.Equal(t, 44100, out.SampleRate)
	assert.Len(t, out.Samples, 8)

	assert.Contains(t, stderr.String(), "msg=match")
	assert.Contains(t, stderr.String(), "msg=done")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir, target, template := writeInputs(t)
	output := filepath.Join(dir, "out.wav")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, errUsage},
		{"two args", []string{target, template}, errUsage},
		{"bad interp", []string{"-interp", "sinc", target, template, output}, stretch.ErrUnknownMode},
		{"missing target", []string{filepath.Join(dir, "nope.wav"), template, output}, audiotar.ErrIO},
		{"unsupported template", []string{target, filepath.Join(dir, "t.mp3"), output}, audiotar.ErrUnsupportedFormat},
		{"help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			err := run(tt.args, &stderr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 0, exitCode(run([]string{"-h"}, new(bytes.Buffer))))
	assert.Equal(t, 1, exitCode(run(nil, new(bytes.Buffer))))
	assert.Equal(t, 1, exitCode(audiotar.ErrEmptyTarget))
}

func TestRun_StereoRejected(t *testing.T) {
	t.Parallel()

	dir, target, _ := writeInputs(t)
	stereo := filepath.Join(dir, "stereo.aiff")
	writeStereoAIFF(t, stereo)

	err := run([]string{target, stereo, filepath.Join(dir, "out.wav")}, new(bytes.Buffer))
	assert.ErrorIs(t, err, audio.ErrNotMono)
}

func writeStereoAIFF(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	enc := aiff.NewEncoder(f, 16000, 16, 2)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 16000},
		Data:   []int{100, -100, 200, -200},
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}
