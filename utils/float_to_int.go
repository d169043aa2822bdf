// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 quantizes a sample to 16-bit PCM. The input is clamped to
// [-1, 1]; negative values scale by 32768 and the rest by 32767, truncating
// toward zero, so -1 maps to -32768 and 1 to 32767. NaN maps to 0.
func Float32ToInt16(x float32) int16 {
	if x != x {
		return 0
	}

	s := float64(x)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	if s < 0 {
		return int16(s * 0x8000)
	}
	return int16(s * 0x7FFF)
}

// Int16ToFloat32 is the inverse scaling of Float32ToInt16.
func Int16ToFloat32(v int16) float32 {
	if v < 0 {
		return float32(v) / 0x8000
	}
	return float32(v) / 0x7FFF
}
