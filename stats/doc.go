// SPDX-License-Identifier: EPL-2.0

// Package stats provides the population statistics used to match a basis
// signal against a residual segment.
//
// All functions work on population (not sample) moments:
//
//	Variance(x)      = mean((x - mean(x))^2)
//	Covariance(a, b) = mean((a - mean(a)) * (b - mean(b)))
//	Correlation(a,b) = Covariance(a, b) / sqrt(Variance(a) * Variance(b))
//
// # Unequal lengths
//
// Covariance takes each mean over its own full sequence, then pairs the
// deviations by position and truncates to the shorter length. Correlation
// therefore mixes full-length variances with a truncated covariance when the
// inputs differ in length. The decomposer relies on this when a segment is one
// sample longer than its basis.
//
// # Degenerate input
//
// Correlation returns NaN or ±Inf when either input has zero variance (a
// constant or single-sample sequence). Callers decide how to treat that; use
// Finite to test the result.
package stats
