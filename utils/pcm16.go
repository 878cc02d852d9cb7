// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToPCM16 converts a normalized float32 sample to 16-bit signed PCM.
// The input is clamped to [-1, 1] first. Negative samples scale by 32768 and
// non-negative samples by 32767 so that both extremes of the int16 range are
// reachable; the scaled value is truncated, not rounded.
func FloatToPCM16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}

// PCM16ToFloat converts a 16-bit signed PCM sample back to float32 in [-1, 1].
// It mirrors FloatToPCM16: negative values divide by 32768 and non-negative
// values by 32767, keeping the round-trip error within one quantization step.
func PCM16ToFloat(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768.0
	}

	return float32(v) / 32767.0
}
