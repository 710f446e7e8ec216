// SPDX-License-Identifier: EPL-2.0

package stats

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/ik5/audiotar/utils"
)

// Mean returns the arithmetic mean of seq, or 0 for an empty sequence.
func Mean[F utils.Float](seq []F) F {
	if len(seq) == 0 {
		return 0
	}

	n := F(len(seq))

	var sum F
	for _, x := range seq {
		sum += x
	}
	m := sum / n

	// A second pass folds the rounding error of the first back in, which
	// makes the mean of a constant sequence exactly that constant.
	var drift F
	for _, x := range seq {
		drift += x - m
	}
	return m + drift/n
}

// Variance returns the population variance of seq.
func Variance(seq []float64) float64 {
	return Covariance(seq, seq)
}

// StdDev returns the population standard deviation of seq.
func StdDev(seq []float64) float64 {
	return math.Sqrt(Variance(seq))
}

// Covariance returns the population covariance of a and b.
// Means are taken over each full sequence; the paired products are
// truncated to the shorter length. Empty pairing yields NaN.
func Covariance(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return math.NaN()
	}

	da := deviations(a, n)
	db := deviations(b, n)

	prod := make([]float64, n)
	vecmath.MulBlock(prod, da, db)

	return Mean(prod)
}

// Correlation returns the Pearson correlation of a and b. It is non-finite
// when either sequence has zero variance.
func Correlation(a, b []float64) float64 {
	va, vb := Variance(a), Variance(b)

	denom := math.Sqrt(va * vb)
	if denom == 0 || math.IsInf(denom, 0) {
		// va*vb left the float64 range; a zero variance still gives 0 here.
		denom = math.Sqrt(va) * math.Sqrt(vb)
	}
	return Covariance(a, b) / denom
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// deviations returns the first n values of seq minus the mean of all of seq.
func deviations(seq []float64, n int) []float64 {
	m := Mean(seq)
	out := make([]float64, n)
	for i := range out {
		out[i] = seq[i] - m
	}
	return out
}
