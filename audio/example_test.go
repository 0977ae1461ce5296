// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audrt/audio"
	"github.com/ik5/audrt/container"
	"github.com/ik5/audrt/internal/audiotest"
)

// Example_resampler demonstrates converting a source to another sample rate.
func Example_resampler() {
	// One second of a 440Hz tone at 44.1kHz.
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)

	resampler := audio.NewResampler(source, 16000)
	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	totalSamples := 0
	for {
		n, err := resampler.ReadSamples(buf)
		totalSamples += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", totalSamples)
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_monoMixer demonstrates folding stereo down to mono.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0)

	mono := audio.NewMonoMixer(source)
	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	// Output:
	// Input channels: 2
	// Output channels: 1
}

// Example_pump demonstrates staging decoded samples into a ring buffer for
// the real-time side to drain.
func Example_pump() {
	source := audiotest.NewConstantSource(8000, 1, 200, 0.5)
	ring, _ := container.NewRing[float32](256, container.RejectNew)

	pump, _ := audio.NewPump(source, ring, 64)
	for {
		if _, err := pump.Step(); err == io.EOF {
			break
		}
	}

	fmt.Println("staged samples:", ring.Available())

	// The other side (normally the audio callback) drains blocks.
	block := make([]float32, 64)
	n := ring.ReadBlock(block)
	fmt.Println("first block:", n, "samples, first value:", block[0])
	// Output:
	// staged samples: 200
	// first block: 64 samples, first value: 0.5
}
