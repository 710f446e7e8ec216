// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits and any channel
// count. Samples come out as float32 in [-1, 1):
//
//	f, _ := os.Open("target.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// Inputs that cannot seek are buffered in memory because the go-audio
// decoder walks RIFF chunks with Seek.
//
// # Encoding
//
// WriteWAV16 writes a mono 16-bit PCM file:
//
//	f, _ := os.Create("out.wav")
//	err := wav.WriteWAV16(f, 44100, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrNotPCM: the format tag is not integer PCM (float WAVs land here)
//   - pcm.ErrUnsupportedBitDepth (wrapped): a bit depth outside 8/16/24/32
package wav
