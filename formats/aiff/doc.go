// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. The
// decoder returns an audio.Source that provides interleaved samples as
// float32 values normalized to the range [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Only 16-bit PCM files are accepted; other bit depths return
// ErrOnlyPCM16bitSupported. Channel count and sample rate follow the file.
package aiff
