// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Values outside the range are clamped; NaN maps to silence.
func FloatToInt16[F Float](x F) int16 {
	v := float64(x)
	if v != v {
		return 0
	}
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	// 32767 on both sides keeps the conversion symmetric.
	return int16(math.Round(v * math.MaxInt16))
}

// FloatsToInt16 converts a whole signal with FloatToInt16.
func FloatsToInt16[F Float](src []F) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = FloatToInt16(x)
	}
	return out
}
