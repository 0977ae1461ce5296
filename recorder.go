// SPDX-License-Identifier: EPL-2.0

package audrt

import (
	"fmt"
	"io"

	"github.com/ik5/audrt/container"
	"github.com/ik5/audrt/engine"
	"github.com/ik5/audrt/formats/wav"
	"github.com/ik5/audrt/utils"
)

// Recorder captures the engine's input stream into a staging ring and
// collects it as interleaved 16-bit PCM. The audio callback only writes
// the ring; conversion happens on the caller's goroutine in Drain.
type Recorder struct {
	eng        *engine.Engine
	ring       *container.Ring[float32]
	sampleRate int
	channels   int
	scratch    []float32
	pcm        []int16
}

// NewRecorder opens an input-only stream on host. blockSize is the engine
// block size in frames.
func NewRecorder(host engine.Host, sampleRate, channels, blockSize int) (*Recorder, error) {
	cfg := engine.Config{
		SampleRate:    sampleRate,
		BlockSize:     blockSize,
		InputChannels: channels,
	}

	eng, err := engine.New(host, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening capture stream: %w", err)
	}

	ring, err := container.NewRing[float32](blockSize*channels*ringBlocks, container.OverwriteOldest)
	if err != nil {
		eng.Close()
		return nil, err
	}

	return &Recorder{
		eng:        eng,
		ring:       ring,
		sampleRate: sampleRate,
		channels:   channels,
		scratch:    make([]float32, blockSize*channels),
	}, nil
}

// Start begins capturing. Call Drain regularly; if the ring fills between
// drains the oldest samples are overwritten.
func (r *Recorder) Start() error {
	return r.eng.Start(engine.InterleavedFunc(r.capture))
}

// capture runs on the audio callback.
func (r *Recorder) capture(in, _ []float32, frames int) {
	r.ring.WriteBlock(in)
}

// Drain moves every staged sample into the recording, converting to
// 16-bit PCM. It returns the number of samples moved.
func (r *Recorder) Drain() int {
	moved := 0
	for {
		n := r.ring.ReadBlock(r.scratch)
		if n == 0 {
			return moved
		}

		for _, v := range r.scratch[:n] {
			r.pcm = append(r.pcm, utils.Float32ToInt16(v))
		}
		moved += n
	}
}

// Stop stops the stream and drains whatever is still staged.
func (r *Recorder) Stop() error {
	err := r.eng.Stop()
	r.Drain()

	return err
}

// Len reports the number of recorded samples.
func (r *Recorder) Len() int { return len(r.pcm) }

// Samples returns the recording as interleaved 16-bit PCM.
func (r *Recorder) Samples() []int16 { return r.pcm }

// WriteWAV writes the recording as a 16-bit PCM WAV file. ws must support
// seeking (os.File does).
func (r *Recorder) WriteWAV(ws io.WriteSeeker) error {
	return wav.WriteWAV16(ws, r.sampleRate, r.channels, r.pcm)
}

// State reports the engine state.
func (r *Recorder) State() engine.State { return r.eng.State() }

// Close releases the stream.
func (r *Recorder) Close() error { return r.eng.Close() }
