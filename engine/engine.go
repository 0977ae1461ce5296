// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// State of the dispatch lifecycle. New performs the configuration step, so
// a freshly constructed Engine is already Configured.
type State uint8

const (
	Configured State = iota
	Running
	Stopped
	Closed
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Config fixes the stream geometry of an Engine. Block size and sample rate
// are immutable while audio is running; create a new Engine to change them.
type Config struct {
	// SampleRate in Hz.
	SampleRate int
	// BlockSize is the number of frames per callback invocation.
	BlockSize int
	// InputChannels and OutputChannels are the channel counts of the
	// capture and playback sides. Either may be zero, not both.
	InputChannels  int
	OutputChannels int
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.BlockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if c.InputChannels < 0 || c.OutputChannels < 0 ||
		c.InputChannels+c.OutputChannels == 0 {
		return ErrNoChannels
	}
	return nil
}

// Engine dispatches one callback invocation per audio block. See the
// package documentation for the lifecycle.
//
// Start, Change, Stop and Close belong to the control loop; the render path
// only ever reads the active-callback slot. The slot is therefore a
// single-writer/single-reader cell and needs no lock.
type Engine struct {
	host Host
	cfg  Config

	mu     sync.Mutex // guards state transitions on the control side
	state  State
	layout Layout

	active atomic.Pointer[Callback]

	// Planar staging, allocated once at construction. planeIn/planeOut
	// are the backing storage; the render path reslices per block.
	planarIn  [][]float32
	planarOut [][]float32
}

// New validates cfg, opens the host stream and returns a Configured engine.
// The host stream stays open until Close.
func New(host Host, cfg Config) (*Engine, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		host:      host,
		cfg:       cfg,
		state:     Configured,
		planarIn:  makePlanes(cfg.InputChannels, cfg.BlockSize),
		planarOut: makePlanes(cfg.OutputChannels, cfg.BlockSize),
	}

	err := host.Open(StreamConfig{
		SampleRate:     cfg.SampleRate,
		BlockSize:      cfg.BlockSize,
		InputChannels:  cfg.InputChannels,
		OutputChannels: cfg.OutputChannels,
	}, e.render)
	if err != nil {
		return nil, fmt.Errorf("opening host stream: %w", err)
	}

	return e, nil
}

// Start installs cb as the active callback and begins real-time processing.
// The callback's calling convention becomes the engine's convention; every
// later Change must match it. Valid from Configured or Stopped.
func (e *Engine) Start(cb Callback) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Running:
		return ErrAlreadyRunning
	case Closed:
		return ErrClosed
	}
	if cb == nil {
		return ErrNilCallback
	}

	e.layout = cb.layout()
	e.active.Store(&cb)

	if err := e.host.Start(); err != nil {
		e.active.Store(nil)
		return fmt.Errorf("starting host stream: %w", err)
	}
	e.state = Running
	return nil
}

// Change atomically replaces the active callback while audio keeps running;
// no block is dropped. The block that is in flight when Change is called
// may still observe the previous callback, but once Change returns every
// subsequent block observes cb. Valid only while Running.
func (e *Engine) Change(cb Callback) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running {
		return ErrNotRunning
	}
	if cb == nil {
		return ErrNilCallback
	}
	if cb.layout() != e.layout {
		return ErrLayoutMismatch
	}

	e.active.Store(&cb)
	return nil
}

// Stop halts real-time processing and releases the callback reference. It
// is synchronous: the host stream is stopped first, so an in-flight block
// completes before the reference is dropped. Valid only while Running.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running {
		return ErrNotRunning
	}

	err := e.host.Stop()
	// Only clear the slot once the stream is quiet; a concurrent render
	// would otherwise fall back to silence mid-stop.
	e.active.Store(nil)
	e.state = Stopped
	if err != nil {
		return fmt.Errorf("stopping host stream: %w", err)
	}
	return nil
}

// Close releases the host stream. The engine must not be Running.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Running:
		return ErrAlreadyRunning
	case Closed:
		return nil
	}

	e.state = Closed
	if err := e.host.Close(); err != nil {
		return fmt.Errorf("closing host stream: %w", err)
	}
	return nil
}

// BlockSize returns the configured frames per block.
func (e *Engine) BlockSize() int { return e.cfg.BlockSize }

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() int { return e.cfg.SampleRate }

// InputChannels returns the capture channel count.
func (e *Engine) InputChannels() int { return e.cfg.InputChannels }

// OutputChannels returns the playback channel count.
func (e *Engine) OutputChannels() int { return e.cfg.OutputChannels }

// BlockRate returns the callback invocation rate in Hz, sample rate divided
// by block size.
func (e *Engine) BlockRate() float64 {
	return float64(e.cfg.SampleRate) / float64(e.cfg.BlockSize)
}

// State returns the current lifecycle state as seen by the control side.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// render is the trampoline the host drives once per block. It never
// allocates and never blocks. A nil slot (possible in the window where the
// host is stopping) produces silence rather than a dropped block.
func (e *Engine) render(in, out []float32, frames int) {
	zeroFill(out)

	cbp := e.active.Load()
	if cbp == nil {
		return
	}

	switch cb := (*cbp).(type) {
	case InterleavedFunc:
		cb(in, out, frames)
	case PlanarFunc:
		pin := reslicePlanes(e.planarIn, frames)
		pout := reslicePlanes(e.planarOut, frames)
		deinterleave(pin, in, e.cfg.InputChannels, frames)
		for _, plane := range pout {
			zeroFill(plane)
		}
		cb(pin, pout, frames)
		interleave(out, pout, e.cfg.OutputChannels, frames)
	}
}

func makePlanes(channels, blockSize int) [][]float32 {
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, blockSize)
	}
	return planes
}

// reslicePlanes trims each staging plane to the current block length. The
// header slice is reused in place, so no allocation occurs per block.
func reslicePlanes(planes [][]float32, frames int) [][]float32 {
	for c := range planes {
		planes[c] = planes[c][:frames]
	}
	return planes
}
