// SPDX-License-Identifier: EPL-2.0

package engine

// RenderFunc is the fixed-signature render function an Engine registers
// with its Host. The host calls it once per audio block with interleaved
// float32 buffers: in holds frames*InputChannels captured samples, out has
// room for frames*OutputChannels samples. frames never exceeds the block
// size negotiated at Open.
//
// The host owns both buffers; they are only valid for the duration of the
// call.
type RenderFunc func(in, out []float32, frames int)

// StreamConfig is the stream geometry an Engine negotiates with its Host
// before starting.
type StreamConfig struct {
	SampleRate     int
	BlockSize      int
	InputChannels  int
	OutputChannels int
}

// Host abstracts the periodic hardware trigger that drives the render
// function. The production implementation is hosts/portaudio; tests use a
// deterministic mock.
//
// Open prepares the stream and registers render; it is called exactly once,
// before any Start. Start begins periodic invocation. Stop halts it and
// must be synchronous: when Stop returns, any in-flight render invocation
// has completed and no further ones will occur. Close releases the stream.
// None of the methods are called concurrently with each other.
type Host interface {
	Open(cfg StreamConfig, render RenderFunc) error
	Start() error
	Stop() error
	Close() error
}
