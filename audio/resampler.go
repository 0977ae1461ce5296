// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audrt/utils"
)

// Resampler streams from src at a target sample rate using Catmull-Rom
// cubic interpolation over a four-frame window. Works on interleaved
// samples and preserves the channel count. It runs on the control loop; the
// usual place for it is between a file decoder and a Pump, matching the
// file's rate to the engine's.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int
	step     float64 // source frames consumed per output frame

	// win holds frames t-1, t0, t+1, t+2; output positions fall between
	// win[1] and win[2]. pos is the fractional offset inside that span.
	win    [4][]float32
	pos    float64
	primed bool

	frame []float32 // one-frame read scratch
	eof   bool
	tail  int // edge frames fabricated after the source ran out

	// inFrames counts real source frames read; outFrames counts emitted
	// frames. Together they bound the output length exactly at
	// ceil(inFrames * dstRate / srcRate), independent of float drift.
	inFrames  int
	outFrames int
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		frame:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame reads exactly one source frame into r.frame. Returns false once
// the source is exhausted.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, nil
	}
	total := 0
	for total < r.channels {
		n, err := r.src.ReadSamples(r.frame[total:r.channels])
		total += n
		if err == io.EOF || (err == nil && n == 0) {
			r.eof = true
			if total == r.channels {
				r.inFrames++
				return true, nil
			}
			// A trailing partial frame cannot be interpolated; drop it.
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading source samples: %w", err)
		}
	}
	r.inFrames++
	return true, nil
}

// shift advances the window by one source frame. After the source runs out
// the last frame is duplicated up to twice, so interpolation covers the
// full tail of the stream; then shift reports false.
func (r *Resampler) shift() (bool, error) {
	ok, err := r.readFrame()
	if err != nil {
		return false, err
	}
	if !ok {
		if r.tail >= 2 {
			return false, nil
		}
		r.tail++
		copy(r.frame, r.win[3])
	}
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	copy(r.win[3], r.frame)
	return true, nil
}

// prime fills the initial window. win[0] duplicates the first frame, and a
// source shorter than three frames pads with its own last frame.
func (r *Resampler) prime() error {
	ok, err := r.readFrame()
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.win[0], r.frame)
	copy(r.win[1], r.frame)

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if !ok {
			r.tail++
			copy(r.win[i], r.win[i-1])
			continue
		}
		copy(r.win[i], r.frame)
	}
	r.primed = true
	return nil
}

// ReadSamples produces samples at the target rate. dst length must be a
// multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1.0 {
			advanced, err := r.shift()
			if err != nil {
				return written * r.channels, err
			}
			if !advanced {
				if written == 0 {
					return 0, io.EOF
				}
				return written * r.channels, io.EOF
			}
			r.pos -= 1.0
		}

		// Once the source length is known, emit only while the output
		// position maps inside it: outFrames*step < inFrames, compared
		// in integers so a near-miss in the float accumulator cannot
		// produce an extra frame.
		if r.eof && r.outFrames*r.srcRate >= r.inFrames*r.dstRate {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		base := written * r.channels
		for c := 0; c < r.channels; c++ {
			dst[base+c] = utils.CubicInterpolate(
				r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], alpha)
		}
		written++
		r.outFrames++
		r.pos += r.step
	}

	return written * r.channels, nil
}
