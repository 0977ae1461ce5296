// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audrt/container"
)

// Pump moves samples from a Source into a container.Ring[float32] in
// bounded block transfers. It is the control-loop half of the data plane:
// the real-time callback drains the ring from the other end, so the pump
// and the callback together form the ring's single producer and single
// consumer.
//
// Pump is not safe for concurrent use; call Step from one goroutine.
type Pump struct {
	src  Source
	ring *container.Ring[float32]
	buf  []float32
	eof  bool
}

// NewPump creates a pump reading at most blockSize frames per Step.
// blockSize is in frames of the source, so one Step never transfers more
// than blockSize*src.Channels() float32 values.
func NewPump(src Source, ring *container.Ring[float32], blockSize int) (*Pump, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if ring == nil {
		return nil, ErrNilRing
	}
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	return &Pump{
		src:  src,
		ring: ring,
		buf:  make([]float32, blockSize*src.Channels()),
	}, nil
}

// Step transfers up to one block from the source into the ring and returns
// the number of float32 values written. For a RejectNew ring it reads only
// what currently fits, so no sample is lost between source and ring; for an
// OverwriteOldest ring it always reads a full block. A return of (0, nil)
// means the ring had no room — retry after the consumer drains. io.EOF is
// returned once the source is exhausted and everything read has been
// written.
func (p *Pump) Step() (int, error) {
	if p.eof {
		return 0, io.EOF
	}

	limit := len(p.buf)
	if p.ring.Mode() == container.RejectNew {
		if free := p.ring.Remaining(); free < limit {
			// Keep whole frames so channel alignment survives a
			// partially full ring.
			limit = free - free%p.src.Channels()
		}
	}
	if limit == 0 {
		return 0, nil
	}

	n, err := p.src.ReadSamples(p.buf[:limit])
	if n > 0 {
		p.ring.WriteBlock(p.buf[:n])
	}
	if err == io.EOF {
		p.eof = true
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("reading source samples: %w", err)
	}
	return n, nil
}

// Drained reports whether the source has been fully consumed.
func (p *Pump) Drained() bool { return p.eof }
