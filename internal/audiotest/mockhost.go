// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"

	"github.com/ik5/audrt/engine"
)

// MockHost is a deterministic engine.Host for tests. Instead of a hardware
// timer, the test drives blocks explicitly through RenderBlock, so dispatch
// behavior can be asserted block by block.
type MockHost struct {
	cfg    engine.StreamConfig
	render engine.RenderFunc

	opened  bool
	started bool
	closed  bool

	// Input is copied into the render input buffer each block. Output
	// holds the render output of the most recent block.
	Input  []float32
	Output []float32

	Blocks int // total RenderBlock calls while started

	// Error hooks for failure-path tests.
	OpenErr  error
	StartErr error
	StopErr  error
}

// NewMockHost creates an idle mock host.
func NewMockHost() *MockHost {
	return &MockHost{}
}

func (h *MockHost) Open(cfg engine.StreamConfig, render engine.RenderFunc) error {
	if h.OpenErr != nil {
		return h.OpenErr
	}
	if h.opened {
		return errors.New("mockhost: Open called twice")
	}
	h.opened = true
	h.cfg = cfg
	h.render = render
	h.Input = make([]float32, cfg.BlockSize*cfg.InputChannels)
	h.Output = make([]float32, cfg.BlockSize*cfg.OutputChannels)
	return nil
}

func (h *MockHost) Start() error {
	if h.StartErr != nil {
		return h.StartErr
	}
	h.started = true
	return nil
}

func (h *MockHost) Stop() error {
	h.started = false
	return h.StopErr
}

func (h *MockHost) Close() error {
	h.closed = true
	return nil
}

// RenderBlock invokes the registered render function once with a full
// block, mimicking one hardware interrupt. It is a no-op unless the host is
// started, matching real hosts that only fire while streaming.
func (h *MockHost) RenderBlock() {
	if !h.started || h.render == nil {
		return
	}
	in := make([]float32, len(h.Input))
	copy(in, h.Input)
	h.render(in, h.Output, h.cfg.BlockSize)
	h.Blocks++
}

// RenderRaw invokes the registered render function directly, regardless of
// stream state, with caller-supplied buffers. It exists so tests can probe
// the trampoline's defensive paths (empty callback slot, short blocks).
func (h *MockHost) RenderRaw(in, out []float32, frames int) {
	if h.render != nil {
		h.render(in, out, frames)
	}
}

// Started reports whether the stream is currently running.
func (h *MockHost) Started() bool { return h.started }

// ClosedStream reports whether Close was called.
func (h *MockHost) ClosedStream() bool { return h.closed }
