// SPDX-License-Identifier: EPL-2.0

package container

import "sync/atomic"

// FIFO is a bounded single-producer/single-consumer queue.
//
// It is lock-free. Both cursors are free-running counters that only wrap
// when indexing into the storage slice; the difference tail-head is the
// element count. The producer loads both cursors but stores only tail; the
// consumer loads both but stores only head. Go's sync/atomic gives
// sequentially consistent ordering, so the consumer always observes an
// element before it observes the tail advance that published it.
//
// Thread assignment:
//   - Push: producer side only
//   - Pop, Peek: consumer side only
//   - Len, Cap, Empty, Full: either side
type FIFO[T any] struct {
	// Cursors live on separate cache lines so producer stores do not
	// invalidate the consumer's line (64-byte lines on common targets).
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
	_    [56]byte

	buf []T
}

// NewFIFO creates a queue holding at most capacity elements. The element
// storage is allocated here and never grows.
func NewFIFO[T any](capacity int) (*FIFO[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &FIFO[T]{buf: make([]T, capacity)}, nil
}

// Push appends v at the tail. It returns false and leaves the queue
// unchanged when full. Producer side only.
func (q *FIFO[T]) Push(v T) bool {
	t := q.tail.Load()
	if t-q.head.Load() == uint64(len(q.buf)) {
		return false
	}
	q.buf[t%uint64(len(q.buf))] = v
	q.tail.Store(t + 1)
	return true
}

// Pop removes and returns the head element. The second return value is
// false when the queue is empty. Consumer side only.
func (q *FIFO[T]) Pop() (T, bool) {
	var zero T
	h := q.head.Load()
	if q.tail.Load() == h {
		return zero, false
	}
	v := q.buf[h%uint64(len(q.buf))]
	q.head.Store(h + 1)
	return v, true
}

// Peek returns the head element without removing it. Consumer side only.
func (q *FIFO[T]) Peek() (T, bool) {
	var zero T
	h := q.head.Load()
	if q.tail.Load() == h {
		return zero, false
	}
	return q.buf[h%uint64(len(q.buf))], true
}

// Len returns the number of queued elements. When called concurrently with
// the opposite side the value may be stale, but it is always within
// [0, Cap()].
func (q *FIFO[T]) Len() int {
	t := q.tail.Load()
	h := q.head.Load()
	if h > t {
		// head advanced between the two loads
		return 0
	}
	if n := t - h; n <= uint64(len(q.buf)) {
		return int(n)
	}
	return len(q.buf)
}

// Cap returns the fixed capacity.
func (q *FIFO[T]) Cap() int { return len(q.buf) }

// Empty reports whether the queue holds no elements.
func (q *FIFO[T]) Empty() bool { return q.Len() == 0 }

// Full reports whether the queue holds Cap() elements.
func (q *FIFO[T]) Full() bool { return q.Len() == len(q.buf) }

// Clear discards all queued elements. Only safe while the producer side is
// quiescent; it is a consumer-side operation.
func (q *FIFO[T]) Clear() {
	q.head.Store(q.tail.Load())
}
