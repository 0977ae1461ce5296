// SPDX-License-Identifier: EPL-2.0

// Package engine implements the audio callback dispatch: the mechanism that
// invokes one application-supplied processing function per fixed-size audio
// block, at the hardware block rate, and lets the application replace that
// function while audio keeps running.
//
// # Lifecycle
//
// An Engine is created over a Host (the hardware abstraction) with a fixed
// block size and sample rate, then started with a callback:
//
//	e, err := engine.New(host, engine.Config{
//		SampleRate:     48000,
//		BlockSize:      256,
//		InputChannels:  1,
//		OutputChannels: 2,
//	})
//	if err != nil { ... }
//
//	err = e.Start(engine.InterleavedFunc(func(in, out []float32, frames int) {
//		copy(out, in) // passthrough
//	}))
//
// While running, Change hot-swaps the active callback without stopping the
// stream, so no audio block is dropped. Stop halts the stream and releases
// the callback reference. Calling Change or Stop in the wrong state is a
// programming error and returns a sentinel error.
//
// # Calling conventions
//
// A callback is either an InterleavedFunc, receiving flat sample slices
// with channels alternating, or a PlanarFunc, receiving one slice per
// channel. The convention is fixed by the first Start; Change must supply a
// callback of the same convention. For the planar convention the engine
// deinterleaves into staging buffers allocated once at construction, so no
// allocation happens on the render path.
//
// # The trampoline
//
// A Host drives a single fixed-signature render function. The engine's
// render function loads the currently active callback from an atomic slot
// and forwards the block to it; when the slot is empty the output block is
// zero-filled (silence). This indirection is what makes Change possible
// without touching the host stream.
//
// # Real-time constraints
//
// The callback must not allocate, must not block, and must return before
// the next block boundary. The engine itself upholds the same rules on the
// render path: the trampoline performs only an atomic load, bounded
// (de)interleave loops over the block, and the call itself.
package engine
