// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is accepted with any channel count
// and sample rate. Samples are normalized by the full scale of their bit
// depth, so they land in [-1, 1):
//
//	f, _ := os.Open("template.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//
// AIFF stores samples big-endian; go-audio handles the byte order. Inputs
// that cannot seek are buffered in memory first.
package aiff
