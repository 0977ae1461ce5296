// SPDX-License-Identifier: EPL-2.0

package container

// Stack is a bounded last-in-first-out container for single-threaded use,
// typically control-loop state such as undo history. It carries no internal
// synchronization; if shared across the real-time boundary it must follow
// the same one-producer/one-consumer discipline as FIFO.
type Stack[T any] struct {
	buf []T
	top int
}

// NewStack creates a stack holding at most capacity elements.
func NewStack[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Stack[T]{buf: make([]T, capacity)}, nil
}

// Push places v on top of the stack. It returns false and leaves the stack
// unchanged when full.
func (s *Stack[T]) Push(v T) bool {
	if s.top == len(s.buf) {
		return false
	}
	s.buf[s.top] = v
	s.top++
	return true
}

// Pop removes and returns the top element. The second return value is false
// when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	s.top--
	return s.buf[s.top], true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if s.top == 0 {
		return zero, false
	}
	return s.buf[s.top-1], true
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.top }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.top == 0 }

// Full reports whether the stack holds Cap() elements.
func (s *Stack[T]) Full() bool { return s.top == len(s.buf) }

// Clear discards all stacked elements.
func (s *Stack[T]) Clear() { s.top = 0 }
