// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be greater than zero")
	ErrInvalidBlockSize  = errors.New("block size must be greater than zero")
	ErrNoChannels        = errors.New("at least one input or output channel required")
	ErrNilHost           = errors.New("host must not be nil")
	ErrNilCallback       = errors.New("callback must not be nil")
	ErrAlreadyRunning    = errors.New("engine is already running")
	ErrNotRunning        = errors.New("engine is not running")
	ErrLayoutMismatch    = errors.New("callback layout differs from the running layout")
	ErrClosed            = errors.New("engine is closed")
)
