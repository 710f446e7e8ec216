// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("template.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Vorbis decodes to float natively, so samples are passed through without
// rescaling. ReadSamples always returns whole interleaved frames.
package vorbis
