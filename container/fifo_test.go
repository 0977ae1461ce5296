// SPDX-License-Identifier: EPL-2.0

package container

import (
	"sync"
	"testing"
)

func TestNewFIFO_InvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -100} {
		if _, err := NewFIFO[int](capacity); err != ErrInvalidCapacity {
			t.Errorf("NewFIFO(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestFIFO_Ordering(t *testing.T) {
	t.Parallel()

	q, err := NewFIFO[int](16)
	if err != nil {
		t.Fatalf("NewFIFO() error = %v", err)
	}

	for i := range 16 {
		if !q.Push(i * 7) {
			t.Fatalf("Push(%d) = false, want true", i*7)
		}
	}

	for i := range 16 {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() #%d ok = false, want true", i)
		}
		if v != i*7 {
			t.Errorf("Pop() #%d = %d, want %d", i, v, i*7)
		}
	}
}

func TestFIFO_FullAndEmptyGuards(t *testing.T) {
	t.Parallel()

	// The capacity-2 scenario: push A, B succeed, C fails, then pops
	// return A, B, C after re-pushing C.
	q, err := NewFIFO[string](2)
	if err != nil {
		t.Fatalf("NewFIFO() error = %v", err)
	}

	if !q.Push("A") {
		t.Fatal(`Push("A") = false, want true`)
	}
	if !q.Push("B") {
		t.Fatal(`Push("B") = false, want true`)
	}
	if q.Push("C") {
		t.Error(`Push("C") on full queue = true, want false`)
	}
	if !q.Full() {
		t.Error("Full() = false, want true")
	}

	if v, ok := q.Pop(); !ok || v != "A" {
		t.Errorf(`Pop() = %q, %v, want "A", true`, v, ok)
	}
	if !q.Push("C") {
		t.Error(`Push("C") after Pop = false, want true`)
	}
	if v, ok := q.Pop(); !ok || v != "B" {
		t.Errorf(`Pop() = %q, %v, want "B", true`, v, ok)
	}
	if v, ok := q.Pop(); !ok || v != "C" {
		t.Errorf(`Pop() = %q, %v, want "C", true`, v, ok)
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue ok = true, want false")
	}
	if !q.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestFIFO_PeekMatchesPop(t *testing.T) {
	t.Parallel()

	q, _ := NewFIFO[int](4)
	if _, ok := q.Peek(); ok {
		t.Error("Peek() on empty queue ok = true, want false")
	}

	q.Push(42)
	q.Push(43)

	peeked, ok := q.Peek()
	if !ok {
		t.Fatal("Peek() ok = false, want true")
	}
	popped, ok := q.Pop()
	if !ok {
		t.Fatal("Pop() ok = false, want true")
	}
	if peeked != popped {
		t.Errorf("Peek() = %d, Pop() = %d, want identical", peeked, popped)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestFIFO_CapacityInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 5
	q, _ := NewFIFO[int](capacity)

	// Mixed pushes and pops crossing the wrap boundary several times.
	for i := range 100 {
		q.Push(i)
		if i%3 == 0 {
			q.Pop()
		}
		n := q.Len()
		if n < 0 || n > capacity {
			t.Fatalf("Len() = %d, want within [0, %d]", n, capacity)
		}
		if q.Full() != (n == capacity) {
			t.Fatalf("Full() = %v with Len() = %d", q.Full(), n)
		}
		if q.Empty() != (n == 0) {
			t.Fatalf("Empty() = %v with Len() = %d", q.Empty(), n)
		}
	}
}

func TestFIFO_Clear(t *testing.T) {
	t.Parallel()

	q, _ := NewFIFO[int](4)
	q.Push(1)
	q.Push(2)
	q.Clear()

	if !q.Empty() {
		t.Error("Empty() after Clear() = false, want true")
	}
	if q.Cap() != 4 {
		t.Errorf("Cap() after Clear() = %d, want 4", q.Cap())
	}
	if !q.Push(3) {
		t.Error("Push() after Clear() = false, want true")
	}
}

// TestFIFO_SPSC drives the queue from one producer goroutine and one
// consumer goroutine and checks that every value arrives exactly once, in
// order. Failed pushes are retried by the producer; empty pops by the
// consumer, so the test also crosses the full and empty boundaries
// repeatedly.
func TestFIFO_SPSC(t *testing.T) {
	t.Parallel()

	const total = 100000
	q, _ := NewFIFO[int](8)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range total {
			for !q.Push(i) {
			}
		}
	}()

	next := 0
	for next < total {
		v, ok := q.Pop()
		if !ok {
			continue
		}
		if v != next {
			t.Fatalf("Pop() = %d, want %d", v, next)
		}
		next++
	}
	wg.Wait()
}
