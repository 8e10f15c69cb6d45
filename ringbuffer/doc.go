// Package ringbuffer provides a fixed-capacity, double-ended circular buffer
// backed by arena storage, with injectable critical-section protection,
// built-in statistics, and optional Prometheus metrics integration.
//
// # Overview
//
// The buffer is generic over its element type and never allocates after
// construction: storage is carved once from an arena.Arena, and every
// operation error on the hot path is a pre-allocated sentinel. Both ends
// support O(1) insertion and removal, so one type covers queue (PushBack +
// PopFront), stack (PushBack + PopBack), and deque usage.
//
// # Quick Start
//
//	region, err := arena.New(1 << 16)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf, err := ringbuffer.New[int32](1000, region)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = buf.PushBack(42)
//	value, err := buf.PopFront()
//
// # Bounded by Design
//
// When the buffer is full, pushes fail with errors.ErrBufferFull instead of
// growing or overwriting. The caller decides the policy: drop the item, pop
// the other end first, or retry with backoff via pkg/retry:
//
//	cfg := retry.Spin()
//	err := retry.Do(ctx, cfg, func() error {
//		return buf.PushBack(sample)
//	})
//
// Full and empty rejections are transient in the errors package
// classification, so errors.IsTransient reports them as retriable.
//
// # Critical Sections
//
// The buffer holds no lock of its own. Mutating operations are bracketed by
// an injected CriticalSection strategy:
//
//   - NopSection: no protection, no overhead (default)
//   - MutexSection: sync.Mutex protection for concurrent producers/consumers
//   - FuncSection: adapts an existing enter/exit callback pair
//
//	var cs ringbuffer.MutexSection
//	buf, _ := ringbuffer.New[*Sample](256, region,
//		ringbuffer.WithCriticalSection[*Sample](&cs),
//	)
//
// Queries (IsEmpty, IsFull, Len, Cap) are unsynchronized snapshots and are
// safe on a nil buffer. With NopSection, all access must come from a single
// goroutine or be serialized externally.
//
// # Arena Storage
//
// The backing []T belongs to the arena that provided it. Resetting or
// releasing the arena invalidates the buffer; there is no per-buffer
// teardown. Popped and cleared slots are never zeroed, the stale values
// simply wait to be overwritten. Because the region is untyped memory to
// the garbage collector, T must not contain pointers (see arena.AllocSlice).
//
// # Peek Aliasing
//
// PeekFront and PeekBack return pointers into the buffer's storage, not
// copies. A peeked pointer is valid only until the next structural mutation,
// and the value it refers to changes in place when the slot is rewritten.
// Front and Back return stable copies for callers that outlive mutations.
//
// # Observability
//
// Statistics are always collected using atomic counters and are available
// via Stats() with no configuration. Prometheus metrics are opt-in:
//
//	buf, err := ringbuffer.New[int32](1000, region,
//		ringbuffer.WithMetrics[int32](registry, "telemetry_queue"),
//	)
//
// Per-buffer counters and gauges are registered under the libring_buffer
// namespace with the prefix as the component label, and operations also feed
// the registry's aggregate core vecs.
//
// # Performance Characteristics
//
//   - PushFront/PushBack/PopFront/PopBack: O(1), no allocation
//   - Front/Back/PeekFront/PeekBack: O(1)
//   - Clear: O(1), indices only
//   - Memory: capacity * sizeof(T) from the arena, acquired once
package ringbuffer
