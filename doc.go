// Package libring provides a fixed-capacity ring buffer built on arena
// storage, designed for telemetry pipelines that need bounded memory and
// predictable, allocation-free steady-state behavior.
//
// # Architecture
//
// The module is organized into small, composable packages:
//
//   - ringbuffer: the generic double-ended circular buffer. Storage is
//     carved once from an arena at construction; pushes and pops at both
//     ends are O(1) and never allocate. Protection is an injected
//     CriticalSection strategy (no-op, mutex, or caller-supplied hooks).
//   - arena: a bump allocator handing out aligned, zeroed regions from a
//     single upfront reservation, with O(1) bulk Reset and Release instead
//     of per-object frees.
//   - errors: classified sentinel errors (transient, invalid, fatal) with
//     component/operation wrapping. Full and empty buffers are transient
//     and retriable; nil handles and bad sizes are invalid; exhausted or
//     released arenas are fatal.
//   - pkg/retry: context-aware exponential backoff with jitter for the
//     transient cases, with presets tuned to buffer contention.
//   - metric: an optional Prometheus registry, core library metrics, and
//     an HTTP server exposing /metrics and /health.
//   - cmd/ringbuffer: a runnable driver pushing synthetic telemetry
//     samples through an instrumented buffer.
//
// # Design Constraints
//
// Capacity is fixed at construction and the buffer never grows, drops, or
// overwrites: a full buffer rejects pushes and the caller chooses the
// policy. Popped and cleared slots are not zeroed; the arena owns the
// storage and reclaims it in bulk. Element types must not contain pointers,
// since arena memory is invisible to the garbage collector.
//
// # Quick Start
//
//	region, err := arena.New(1 << 16)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer region.Release()
//
//	buf, err := ringbuffer.New[int32](1000, region)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = buf.PushBack(42)
//	v, err := buf.PopFront()
//
// See the ringbuffer package documentation for critical sections, peeking,
// and observability.
package libring
