// SPDX-License-Identifier: EPL-2.0

// Package audio provides the control-loop side of the audio data plane:
// sample sources, format-decoder registration, channel and rate adaptation,
// and the Pump that moves samples from a source into a fixed-capacity ring
// buffer for the real-time engine to drain.
//
// # Source interface
//
// The Source interface is the foundation of the feed path:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement it, so they can be chained:
// decode a file, fold it to mono, match the engine rate, pump it into a
// ring. Samples are interleaved float32 in [-1, 1]; ReadSamples returns the
// number of float32 values written and io.EOF once the stream is finished.
//
// # Adaptation
//
// MonoMixer folds a multi-channel source down to one channel by averaging.
// Resampler converts a source to a target rate using cubic interpolation.
// Both run on the control loop, never inside the render callback — the
// callback only ever moves samples between the hardware block and a ring.
//
// # Feeding the engine
//
// Pump is the main-loop half of the data plane: each Step reads a bounded
// amount from a Source and block-writes it into a container.Ring[float32].
// The engine's callback drains the same ring from the other end:
//
//	ring, _ := container.NewRing[float32](8192, container.RejectNew)
//	pump := audio.NewPump(src, ring, 1024)
//	for {
//	    n, err := pump.Step()
//	    if err == io.EOF {
//	        break
//	    }
//	    if n == 0 {
//	        time.Sleep(time.Millisecond) // ring full, engine will catch up
//	    }
//	}
//
// # Format registry
//
// The Registry maps format keys to decoders, so applications can register
// the formats they link in:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
