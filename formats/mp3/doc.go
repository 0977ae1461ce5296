// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 streams.
// The decoder returns an audio.Source that provides interleaved samples as
// float32 values normalized to the range [-1.0, 1.0].
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-mp3 always produces stereo output regardless of the encoded channel
// layout, so Channels is always 2. Use audio.NewMonoMixer to fold the
// output down to mono:
//
//	mono := audio.NewMonoMixer(source)
//
// MP3 writing is not supported; the package decodes only.
package mp3
