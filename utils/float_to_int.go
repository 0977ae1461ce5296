// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized [-1, 1] sample to 16-bit PCM,
// clamping anything outside the range. It is the inverse of
// Int16ToFloat32 on the encode side of the data plane (recorder, WAV
// writer pipelines).
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1.0 stays representable.
	return int16(x * 32767.0)
}
