// SPDX-License-Identifier: EPL-2.0

package utils

// Float is the set of sample types the helpers accept.
type Float interface {
	~float32 | ~float64
}

// CubicInterpolate performs Catmull-Rom interpolation between y1 and y2.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0 and y3 are the outer neighbours.
func CubicInterpolate[F Float](y0, y1, y2, y3, x F) F {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// ClampIndex limits i to [0, n-1]. n must be positive.
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
