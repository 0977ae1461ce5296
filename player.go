// SPDX-License-Identifier: EPL-2.0

package audrt

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/ik5/audrt/audio"
	"github.com/ik5/audrt/container"
	"github.com/ik5/audrt/engine"
)

// ringBlocks is how many engine blocks of headroom the staging ring holds.
const ringBlocks = 8

// Player streams a decoded audio.Source through an Engine. Decoding runs
// on the caller's goroutine (Feed or Play); the audio callback only drains
// the staging ring, so it never blocks on I/O.
type Player struct {
	eng       *engine.Engine
	ring      *container.Ring[float32]
	pump      *audio.Pump
	src       audio.Source
	underruns atomic.Uint64
}

// NewPlayer opens an output-only stream on host matching the source's
// sample rate and channel count. blockSize is the engine block size in
// frames.
func NewPlayer(host engine.Host, src audio.Source, blockSize int) (*Player, error) {
	if src == nil {
		return nil, audio.ErrNilSource
	}

	cfg := engine.Config{
		SampleRate:     src.SampleRate(),
		BlockSize:      blockSize,
		OutputChannels: src.Channels(),
	}

	eng, err := engine.New(host, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening playback stream: %w", err)
	}

	ring, err := container.NewRing[float32](blockSize*src.Channels()*ringBlocks, container.RejectNew)
	if err != nil {
		eng.Close()
		return nil, err
	}

	pump, err := audio.NewPump(src, ring, blockSize)
	if err != nil {
		eng.Close()
		return nil, err
	}

	return &Player{eng: eng, ring: ring, pump: pump, src: src}, nil
}

// Start begins playback. Samples staged with Feed are drained by the
// audio callback; a block that finds the ring short plays the missing
// tail as silence and counts as an underrun.
func (p *Player) Start() error {
	return p.eng.Start(engine.InterleavedFunc(p.render))
}

// render runs on the audio callback. The engine zeroed out before the
// call, so whatever the ring cannot supply stays silent.
func (p *Player) render(_, out []float32, frames int) {
	if n := p.ring.ReadBlock(out); n < len(out) {
		p.underruns.Add(1)
	}
}

// Feed moves up to one block of samples from the source into the staging
// ring. It returns the number of samples moved and io.EOF once the source
// is exhausted. A full ring reports (0, nil); call again after the
// callback has drained some samples.
func (p *Player) Feed() (int, error) {
	return p.pump.Step()
}

// Play runs the whole lifecycle: start the engine, keep the ring fed
// until the source is exhausted, let the staged tail play out, stop.
// Cancelling ctx stops playback early.
func (p *Player) Play(ctx context.Context) error {
	if err := p.Start(); err != nil {
		return err
	}

	// Sleeping half a block keeps the ring topped up without spinning.
	interval := time.Duration(p.eng.BlockSize()) * time.Second /
		time.Duration(2*p.eng.SampleRate())
	if interval <= 0 {
		interval = time.Millisecond
	}

	for {
		select {
		case <-ctx.Done():
			p.eng.Stop()
			return ctx.Err()
		default:
		}

		n, err := p.Feed()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.eng.Stop()
			return fmt.Errorf("feeding playback ring: %w", err)
		}
		if n == 0 {
			time.Sleep(interval)
		}
	}

	for !p.ring.Empty() {
		select {
		case <-ctx.Done():
			p.eng.Stop()
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	return p.eng.Stop()
}

// Underruns reports how many blocks found fewer staged samples than they
// needed. The final partial block of a stream counts too.
func (p *Player) Underruns() uint64 { return p.underruns.Load() }

// Drained reports whether the source is exhausted and every staged sample
// has been played.
func (p *Player) Drained() bool { return p.pump.Drained() && p.ring.Empty() }

// Stop stops the stream, leaving it restartable.
func (p *Player) Stop() error { return p.eng.Stop() }

// State reports the engine state.
func (p *Player) State() engine.State { return p.eng.State() }

// Close releases the stream and the source.
func (p *Player) Close() error {
	err := p.eng.Close()
	if cerr := p.src.Close(); err == nil {
		err = cerr
	}

	return err
}
