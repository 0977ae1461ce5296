// SPDX-License-Identifier: EPL-2.0

package engine

// Layout selects how sample buffers are presented to a callback.
type Layout uint8

const (
	// Interleaved presents one flat slice per direction, channels
	// alternating within it.
	Interleaved Layout = iota
	// Planar presents one contiguous slice per channel.
	Planar
)

func (l Layout) String() string {
	switch l {
	case Interleaved:
		return "interleaved"
	case Planar:
		return "planar"
	}
	return "unknown"
}

// Callback is a per-block audio processing function. It is implemented by
// InterleavedFunc and PlanarFunc; the two types fix the calling convention
// the engine uses when forwarding a block.
//
// A callback runs on the real-time render path: it must not allocate, must
// not call anything that can block, and must return before the next block
// boundary.
type Callback interface {
	layout() Layout
}

// InterleavedFunc processes one block of interleaved samples. in holds
// frames*InputChannels read-only samples; out has room for
// frames*OutputChannels samples and arrives zero-filled.
type InterleavedFunc func(in, out []float32, frames int)

func (InterleavedFunc) layout() Layout { return Interleaved }

// PlanarFunc processes one block of planar samples: in[c] and out[c] hold
// frames samples of channel c. out arrives zero-filled.
type PlanarFunc func(in, out [][]float32, frames int)

func (PlanarFunc) layout() Layout { return Planar }

// deinterleave splits frames*channels interleaved samples from src into the
// per-channel slices of dst. dst[c] must hold at least frames samples.
func deinterleave(dst [][]float32, src []float32, channels, frames int) {
	for c := 0; c < channels; c++ {
		plane := dst[c]
		for f := 0; f < frames; f++ {
			plane[f] = src[f*channels+c]
		}
	}
}

// interleave merges the per-channel slices of src into frames*channels
// interleaved samples in dst.
func interleave(dst []float32, src [][]float32, channels, frames int) {
	for c := 0; c < channels; c++ {
		plane := src[c]
		for f := 0; f < frames; f++ {
			dst[f*channels+c] = plane[f]
		}
	}
}

func zeroFill(p []float32) {
	for i := range p {
		p[i] = 0
	}
}
