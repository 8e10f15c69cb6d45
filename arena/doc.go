// Package arena implements a fixed-capacity bump allocator (memory arena)
// backing the ring buffer's storage.
//
// # Overview
//
// An arena reserves one contiguous, zeroed region up front and hands out
// aligned portions of it on demand. There is no per-allocation free: callers
// rewind the whole arena with Reset or invalidate everything with Release.
// This matches how fixed-memory systems provision buffers — all storage is
// sized and acquired at startup, and steady-state operation never touches
// the allocator again.
//
// # Basic Usage
//
//	a, err := arena.New(64 * 1024)
//	if err != nil {
//	    return err
//	}
//	defer a.Release()
//
//	// Raw bytes
//	raw, err := a.AllocBytes(256)
//
//	// Typed storage (how ringbuffer acquires its region)
//	slots, err := arena.AllocSlice[Sample](a, 1024)
//
// # Contracts
//
//   - Every region is zeroed at acquisition time, including regions handed
//     out after a Reset.
//   - Regions are aligned for their element type.
//   - A slice handed out before Reset or Release must not be used afterwards;
//     the arena cannot detect this.
//   - Element types must not contain pointers — the region is untyped memory
//     to the garbage collector.
//
// # Thread Safety
//
// All methods are safe for concurrent use; allocation is serialized behind an
// internal mutex. The slices handed out are not synchronized — that is the
// consumer's concern (the ring buffer brackets its accesses with its own
// critical section).
//
// # Metrics
//
// Usage can be exposed as Prometheus metrics via the functional option:
//
//	a, err := arena.New(size, arena.WithMetrics(registry, "telemetry"))
//
// Stats() returns the same information as an in-process snapshot without any
// registry involved.
package arena
