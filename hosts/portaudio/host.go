// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package portaudio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/ik5/audrt/engine"
)

// Host drives an engine.RenderFunc from a PortAudio callback stream on the
// default input/output devices.
type Host struct {
	cfg    engine.StreamConfig
	render engine.RenderFunc
	stream *portaudio.Stream
	inited bool
}

// NewHost creates an unopened host. PortAudio itself is initialized in Open
// and terminated in Close.
func NewHost() *Host {
	return &Host{}
}

// Open initializes PortAudio and opens a callback stream on the default
// devices with the given geometry.
func (h *Host) Open(cfg engine.StreamConfig, render engine.RenderFunc) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	h.inited = true
	h.cfg = cfg
	h.render = render

	// gordonklaus/portaudio matches the callback signature to the channel
	// structure of the stream, so a capture-only or playback-only stream
	// needs a single-buffer callback.
	var cb any
	switch {
	case cfg.InputChannels > 0 && cfg.OutputChannels > 0:
		cb = func(in, out []float32) {
			h.render(in, out, len(out)/cfg.OutputChannels)
		}
	case cfg.OutputChannels > 0:
		cb = func(out []float32) {
			h.render(nil, out, len(out)/cfg.OutputChannels)
		}
	default:
		cb = func(in []float32) {
			h.render(in, nil, len(in)/cfg.InputChannels)
		}
	}

	stream, err := portaudio.OpenDefaultStream(
		cfg.InputChannels,
		cfg.OutputChannels,
		float64(cfg.SampleRate),
		cfg.BlockSize,
		cb,
	)
	if err != nil {
		_ = portaudio.Terminate()
		h.inited = false
		return fmt.Errorf("opening portaudio stream: %w", err)
	}
	h.stream = stream
	return nil
}

// Start begins periodic callback invocation.
func (h *Host) Start() error {
	if err := h.stream.Start(); err != nil {
		return fmt.Errorf("starting portaudio stream: %w", err)
	}
	return nil
}

// Stop halts the stream. PortAudio's Stop waits for the in-flight callback
// to finish, which gives the engine its synchronous-stop guarantee.
func (h *Host) Stop() error {
	if err := h.stream.Stop(); err != nil {
		return fmt.Errorf("stopping portaudio stream: %w", err)
	}
	return nil
}

// Close releases the stream and terminates PortAudio.
func (h *Host) Close() error {
	var streamErr error
	if h.stream != nil {
		streamErr = h.stream.Close()
		h.stream = nil
	}
	if h.inited {
		h.inited = false
		if err := portaudio.Terminate(); err != nil {
			return fmt.Errorf("terminating portaudio: %w", err)
		}
	}
	if streamErr != nil {
		return fmt.Errorf("closing portaudio stream: %w", streamErr)
	}
	return nil
}
