// SPDX-License-Identifier: EPL-2.0

package container_test

import (
	"fmt"

	"github.com/ik5/audrt/container"
)

// Example_fifo demonstrates the bounded queue's full and empty guards.
func Example_fifo() {
	q, _ := container.NewFIFO[string](2)

	fmt.Println(q.Push("A"))
	fmt.Println(q.Push("B"))
	fmt.Println(q.Push("C")) // full, rejected

	v, _ := q.Pop()
	fmt.Println(v)
	// Output:
	// true
	// true
	// false
	// A
}

// Example_ring demonstrates the overwrite-oldest policy of a streaming
// buffer: the newest samples survive, the oldest are discarded.
func Example_ring() {
	r, _ := container.NewRing[int](4, container.OverwriteOldest)

	for v := 1; v <= 5; v++ {
		r.Write(v)
	}

	fmt.Println("available:", r.Available())
	out := make([]int, 4)
	r.ReadBlock(out)
	fmt.Println("samples:", out)
	// Output:
	// available: 4
	// samples: [2 3 4 5]
}

// Example_stack demonstrates LIFO ordering.
func Example_stack() {
	s, _ := container.NewStack[int](4)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	for !s.Empty() {
		v, _ := s.Pop()
		fmt.Println(v)
	}
	// Output:
	// 3
	// 2
	// 1
}
