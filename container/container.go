// SPDX-License-Identifier: EPL-2.0

package container

// Shared index arithmetic for the circular containers. Capacities are not
// required to be powers of two, so wraparound uses comparison rather than
// bit masking.

// wrap advances idx by one position within a buffer of length n.
func wrap(idx, n int) int {
	idx++
	if idx == n {
		return 0
	}
	return idx
}

// copyIn copies src into buf starting at pos, wrapping around the end of
// buf. len(src) must not exceed len(buf).
func copyIn[T any](buf, src []T, pos int) {
	n := copy(buf[pos:], src)
	if n < len(src) {
		copy(buf, src[n:])
	}
}

// copyOut copies len(dst) elements out of buf starting at pos, wrapping
// around the end of buf. len(dst) must not exceed len(buf).
func copyOut[T any](dst, buf []T, pos int) {
	n := copy(dst, buf[pos:])
	if n < len(dst) {
		copy(dst[n:], buf)
	}
}
