// SPDX-License-Identifier: EPL-2.0

// Package audiotar rebuilds a long target recording out of rescaled copies
// of a short template.
//
// Combine stretches the template to the target's length, measures how well
// it correlates with the target, and subtracts the correlation-weighted
// template. The target is then halved and each half is matched against the
// template shrunk to the half's length, down to levels recursion levels or
// single samples. The returned signal is the sum of every match:
//
//	target, _ := audiotar.LoadMono("speech.wav", nil)
//	template, _ := audiotar.LoadMono("click.wav", nil)
//
//	out, err := audiotar.Combine(target.Samples, template.Samples, audiotar.DefaultLevels)
//	if err != nil {
//	    return err
//	}
//	err = audiotar.SaveMono("out.wav", target.SampleRate, out)
//
// # Interpolation
//
// stretch.Floor is the default resampler and repeats the sample at the
// floor of each source position. stretch.Linear and stretch.Cubic blend
// neighbouring samples and can be chosen with WithMode.
//
// # Odd segments
//
// With decompose.SplitShared (the default) both halves of a segment are
// matched against one basis sized for the first half, so the last sample of
// an odd segment's second half is not matched at that level.
// decompose.SplitExact sizes the basis for each half.
//
// # Degenerate segments
//
// A segment or basis with zero variance has no defined correlation. Such a
// node contributes nothing, leaves its residual untouched and is reported
// with Step.Degenerate; its halves are still matched.
//
// # Files
//
// LoadMono reads WAV, AIFF and Ogg Vorbis files through the decoders in the
// formats packages and rejects anything that is not single channel.
// SaveMono writes 16-bit PCM WAV. Failures are reported as *IOError, which
// matches ErrIO.
package audiotar
