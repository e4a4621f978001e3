// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts one normalized sample in [-1, 1] to 16-bit
// PCM by clamp and scale.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float64ToInt16 is Float32ToInt16 for float64 samples.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// IntToInt16 clamps an integer PCM value to the int16 range. Sources
// decoded through go-audio hand samples over as int regardless of
// their bit depth.
func IntToInt16(x int) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}
