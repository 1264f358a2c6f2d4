// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the decoders.
package utils

import "math"

// ClampUnit32 maps NaN to 0 and clamps x to [-1, 1].
func ClampUnit32(x float32) float32 {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}

	return x
}

// ClampUnit64 maps NaN to 0 and clamps x to [-1, 1].
func ClampUnit64(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}

	return x
}

// ClampInt32 limits v to [lo, hi].
func ClampInt32(v, lo, hi int32) int32 {
	return min(max(v, lo), hi)
}

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, the inverse of
// the 16-bit decoders' s/32768 scaling. Out of range input saturates.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(ClampUnit32(x)) * 32768)

	return int16(ClampInt32(int32(v), math.MinInt16, math.MaxInt16))
}
