// SPDX-License-Identifier: EPL-2.0

// Package stretch resizes a signal to an arbitrary length by positional
// interpolation.
//
// For an output index i of a result of length L built from a source of
// length N, the source position is p = N*i/L, split into f = floor(p) and
// frac = p - f. The Mode decides how the neighbourhood of f is blended:
//
//   - Floor blends src[f] with src[min(f, N-1)], which is src[f] itself.
//     This is nearest-floor lookup and is the default, reproducing the
//     historical behavior of the matcher.
//   - Linear blends src[f] with src[min(f+1, N-1)].
//   - Cubic runs a Catmull-Rom spline over src[f-1..f+2], clamped at the
//     edges.
//
// Every mode reproduces the source exactly when L == N.
package stretch
