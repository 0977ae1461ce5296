// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrNilSource        = errors.New("source must not be nil")
	ErrNilRing          = errors.New("ring must not be nil")
	ErrInvalidBlockSize = errors.New("block size must be greater than zero")
)
