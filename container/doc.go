// SPDX-License-Identifier: EPL-2.0

// Package container provides fixed-capacity, allocation-free containers for
// moving sample data across the real-time audio boundary.
//
// All three containers allocate their element storage exactly once, at
// construction, and never again. Every operation completes in bounded time
// and signals capacity exhaustion through boolean or count return values
// rather than errors, so they are safe to call from an audio render callback.
//
// # Containers
//
// FIFO is a bounded single-producer/single-consumer queue. It is lock-free:
// the producer owns the tail cursor, the consumer owns the head cursor, and
// each side only ever stores its own cursor. It is the right choice for
// handing discrete values (events, parameter changes) between the render
// callback and the control loop:
//
//	q, _ := container.NewFIFO[float64](64)
//	q.Push(440.0)         // control loop
//	v, ok := q.Pop()      // render callback
//
// Stack is a bounded LIFO for single-threaded use, such as undo history on
// the control loop. If shared across the real-time boundary it must follow
// the same one-producer/one-consumer discipline as the FIFO.
//
// Ring is a streaming circular buffer with block transfer, built for
// continuous sample streams. Its overflow policy is fixed at construction:
//
//	// Live capture: keep the newest audio, silently drop the oldest.
//	rb, _ := container.NewRing[float32](8192, container.OverwriteOldest)
//
//	// Event staging: never lose a write, report the overflow instead.
//	lb, _ := container.NewRing[event](256, container.RejectNew)
//
// WriteBlock and ReadBlock transfer as many whole elements as capacity or
// availability permits and return the actual count, which may be smaller
// than the slice given.
//
// # Concurrency contract
//
// The FIFO and the Ring are safe under exactly one producer and one
// consumer. Using either with multiple producers or multiple consumers is
// out of contract and requires external synchronization.
package container
