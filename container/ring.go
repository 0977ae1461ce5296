// SPDX-License-Identifier: EPL-2.0

package container

import "sync"

// OverflowMode selects the write policy of a full Ring. It is fixed at
// construction and cannot change for the life of the buffer.
type OverflowMode uint8

const (
	// OverwriteOldest makes writes always succeed; when the buffer is
	// full each new element silently displaces the oldest unread one.
	// This is the right policy for live audio lines, where continuity
	// matters more than completeness.
	OverwriteOldest OverflowMode = iota

	// RejectNew makes writes fail once the buffer is full; no element is
	// ever silently destroyed. Use it for event staging where every
	// write must be accounted for.
	RejectNew
)

// Ring is a fixed-capacity streaming circular buffer with block transfer.
//
// It is guarded by a mutex with strictly bounded critical sections (at most
// two copy segments per block transfer), which keeps the worst case short
// enough for one side to live inside an audio render callback. Safe for one
// producer and one consumer; see the package documentation.
type Ring[T any] struct {
	mu   sync.Mutex
	buf  []T
	mode OverflowMode
	head int // position of the oldest unread element
	size int // number of unread elements
}

// NewRing creates a ring buffer holding at most capacity elements with the
// given overflow policy. The element storage is allocated here and never
// grows.
func NewRing[T any](capacity int, mode OverflowMode) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if mode != OverwriteOldest && mode != RejectNew {
		return nil, ErrUnknownOverflowMode
	}
	return &Ring[T]{buf: make([]T, capacity), mode: mode}, nil
}

// Write appends a single element. Under RejectNew it returns false when the
// buffer is full; under OverwriteOldest it always returns true, displacing
// the oldest unread element when necessary.
func (r *Ring[T]) Write(v T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == len(r.buf) {
		if r.mode == RejectNew {
			return false
		}
		r.buf[r.head] = v
		r.head = wrap(r.head, len(r.buf))
		return true
	}

	r.buf[r.writePos()] = v
	r.size++
	return true
}

// Read removes and returns the oldest unread element. The second return
// value is false when the buffer is empty.
func (r *Ring[T]) Read() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if r.size == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.head = wrap(r.head, len(r.buf))
	r.size--
	return v, true
}

// Peek returns the element at a logical offset from the read cursor without
// consuming it. Offset 0 is the next value Read would return. It returns
// false when offset is negative or at or beyond Available().
func (r *Ring[T]) Peek(offset int) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	if offset < 0 || offset >= r.size {
		return zero, false
	}
	return r.buf[(r.head+offset)%len(r.buf)], true
}

// WriteBlock appends as many elements of p as the policy permits and
// returns the count actually written.
//
// Under RejectNew the count is min(len(p), Remaining()). Under
// OverwriteOldest the count is min(len(p), Cap()): a block larger than the
// whole buffer is capped at capacity — the first Cap() elements are written
// and the remainder is reported as not written.
func (r *Ring[T]) WriteBlock(p []T) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p)
	if r.mode == RejectNew {
		if free := len(r.buf) - r.size; n > free {
			n = free
		}
	} else if n > len(r.buf) {
		n = len(r.buf)
	}
	if n == 0 {
		return 0
	}

	// Under OverwriteOldest, displace enough old elements first.
	if over := n - (len(r.buf) - r.size); over > 0 {
		r.head = (r.head + over) % len(r.buf)
		r.size -= over
	}

	copyIn(r.buf, p[:n], r.writePos())
	r.size += n
	return n
}

// ReadBlock removes up to len(dst) elements into dst and returns the count
// actually read, at most min(len(dst), Available()).
func (r *Ring[T]) ReadBlock(dst []T) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(dst)
	if n > r.size {
		n = r.size
	}
	if n == 0 {
		return 0
	}

	copyOut(dst[:n], r.buf, r.head)
	r.head = (r.head + n) % len(r.buf)
	r.size -= n
	return n
}

// Available returns the number of elements ready to read.
func (r *Ring[T]) Available() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// Remaining returns the free write capacity.
func (r *Ring[T]) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buf) - r.size
}

// Cap returns the fixed total capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Mode returns the overflow policy fixed at construction.
func (r *Ring[T]) Mode() OverflowMode { return r.mode }

// Empty reports whether no elements are ready to read.
func (r *Ring[T]) Empty() bool { return r.Available() == 0 }

// Full reports whether the buffer holds Cap() unread elements.
func (r *Ring[T]) Full() bool { return r.Available() == len(r.buf) }

// Clear discards all unread elements. Capacity and overflow policy are
// unchanged.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.size = 0
}

// writePos returns the index one past the newest unread element. Callers
// must hold r.mu.
func (r *Ring[T]) writePos() int {
	return (r.head + r.size) % len(r.buf)
}
