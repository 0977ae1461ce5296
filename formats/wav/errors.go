// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid WAV file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrUnsupportedWavLayout indicates an unsupported WAV layout.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrNoChannels indicates a writer call with a non-positive channel count.
	ErrNoChannels = errors.New("channel count must be positive")
)
