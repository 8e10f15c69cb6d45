package ringbuffer

import (
	"github.com/eagletrt/libring-buffer-sw/arena"
	"github.com/eagletrt/libring-buffer-sw/errors"
)

// Buffer is a fixed-capacity double-ended ring buffer of T backed by
// arena-owned storage. Capacity is set once at construction; no operation
// allocates afterwards.
//
// Logical element i lives at physical index (start+i) mod capacity. Both ends
// support O(1) insertion and removal, so the buffer serves as a queue, a
// stack, or a deque depending on which operation pairs the caller uses.
//
// Mutating operations are bracketed by the injected CriticalSection.
// Queries (IsEmpty, IsFull, Len, Cap) are unsynchronized snapshots.
type Buffer[T any] struct {
	data     []T
	capacity int
	start    int // Physical index of the logical front
	size     int
	cs       CriticalSection
	stats    *Statistics    // ALWAYS initialized for observability
	metrics  *bufferMetrics // Optional Prometheus metrics
}

// New creates a buffer of the given capacity with storage carved from the
// arena. The storage is acquired once and stays valid until the arena is
// reset or released; using the buffer after either is undefined.
//
// Returns errors.ErrZeroCapacity for a non-positive capacity,
// errors.ErrNilArena for a nil arena, and errors.ErrArenaExhausted when the
// arena cannot hold capacity elements of T.
func New[T any](capacity int, a *arena.Arena, options ...Option[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrZeroCapacity, "Buffer", "New", "validate capacity")
	}
	if a == nil {
		return nil, errors.WrapInvalid(errors.ErrNilArena, "Buffer", "New", "validate arena")
	}

	opts := applyOptions(options...)

	data, err := arena.AllocSlice[T](a, capacity)
	if err != nil {
		return nil, err
	}

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *bufferMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Buffer", "New", "metrics registration")
		}
		metrics.recordCreate()
	}

	return &Buffer[T]{
		data:     data,
		capacity: capacity,
		cs:       opts.cs,
		stats:    stats,
		metrics:  metrics,
	}, nil
}

// IsEmpty returns true if the buffer contains no items. Nil-safe: a nil
// buffer reports empty.
func (b *Buffer[T]) IsEmpty() bool {
	return b == nil || b.size == 0
}

// IsFull returns true if the buffer is at capacity. Nil-safe: a nil buffer
// reports not full.
func (b *Buffer[T]) IsFull() bool {
	return b != nil && b.size == b.capacity
}

// Len returns the current number of items. Nil-safe.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Cap returns the fixed capacity. Nil-safe.
func (b *Buffer[T]) Cap() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// PushFront inserts an item before the current front. Returns
// errors.ErrBufferFull when the buffer is at capacity; the buffer is
// unchanged on failure.
func (b *Buffer[T]) PushFront(item T) error {
	if b == nil {
		return errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == b.capacity {
		b.stats.RejectFull()
		if b.metrics != nil {
			b.metrics.recordFullRejection()
		}
		return errors.ErrBufferFull
	}

	// Retreat the front with wraparound before writing
	if b.start == 0 {
		b.start = b.capacity
	}
	b.start--
	b.data[b.start] = item
	b.size++

	b.stats.PushFront()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPushFront(b.size, b.capacity)
	}

	return nil
}

// PushBack inserts an item after the current back. Returns
// errors.ErrBufferFull when the buffer is at capacity; the buffer is
// unchanged on failure.
func (b *Buffer[T]) PushBack(item T) error {
	if b == nil {
		return errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == b.capacity {
		b.stats.RejectFull()
		if b.metrics != nil {
			b.metrics.recordFullRejection()
		}
		return errors.ErrBufferFull
	}

	b.data[(b.start+b.size)%b.capacity] = item
	b.size++

	b.stats.PushBack()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPushBack(b.size, b.capacity)
	}

	return nil
}

// PopFront removes and returns the front item. Returns errors.ErrBufferEmpty
// when the buffer is empty. The slot keeps its stale value in arena storage;
// it is overwritten by a later push, never zeroed.
func (b *Buffer[T]) PopFront() (T, error) {
	var zero T
	if b == nil {
		return zero, errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		b.stats.RejectEmpty()
		if b.metrics != nil {
			b.metrics.recordEmptyRejection()
		}
		return zero, errors.ErrBufferEmpty
	}

	item := b.data[b.start]
	b.start = (b.start + 1) % b.capacity
	b.size--

	b.stats.PopFront()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPopFront(b.size, b.capacity)
	}

	return item, nil
}

// PopBack removes and returns the back item. Returns errors.ErrBufferEmpty
// when the buffer is empty. The front index is unchanged; the vacated slot
// keeps its stale value.
func (b *Buffer[T]) PopBack() (T, error) {
	var zero T
	if b == nil {
		return zero, errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		b.stats.RejectEmpty()
		if b.metrics != nil {
			b.metrics.recordEmptyRejection()
		}
		return zero, errors.ErrBufferEmpty
	}

	item := b.data[(b.start+b.size-1)%b.capacity]
	b.size--

	b.stats.PopBack()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPopBack(b.size, b.capacity)
	}

	return item, nil
}

// Front returns a copy of the front item without removing it. Returns
// errors.ErrBufferEmpty when the buffer is empty.
func (b *Buffer[T]) Front() (T, error) {
	var zero T
	if b == nil {
		return zero, errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		b.stats.RejectEmpty()
		if b.metrics != nil {
			b.metrics.recordEmptyRejection()
		}
		return zero, errors.ErrBufferEmpty
	}

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return b.data[b.start], nil
}

// Back returns a copy of the back item without removing it. Returns
// errors.ErrBufferEmpty when the buffer is empty.
func (b *Buffer[T]) Back() (T, error) {
	var zero T
	if b == nil {
		return zero, errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		b.stats.RejectEmpty()
		if b.metrics != nil {
			b.metrics.recordEmptyRejection()
		}
		return zero, errors.ErrBufferEmpty
	}

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return b.data[(b.start+b.size-1)%b.capacity], nil
}

// PeekFront returns a pointer to the front item in storage, or nil when the
// buffer is empty or nil.
//
// The pointer aliases the buffer's storage: it stays valid only until the
// next structural mutation (push, pop, clear), and the value it points at
// changes in place if the slot is rewritten. Use Front for a stable copy.
func (b *Buffer[T]) PeekFront() *T {
	if b == nil {
		return nil
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		return nil
	}

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return &b.data[b.start]
}

// PeekBack returns a pointer to the back item in storage, or nil when the
// buffer is empty or nil. The same aliasing caveats as PeekFront apply.
func (b *Buffer[T]) PeekBack() *T {
	if b == nil {
		return nil
	}

	b.cs.Enter()
	defer b.cs.Exit()

	if b.size == 0 {
		return nil
	}

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return &b.data[(b.start+b.size-1)%b.capacity]
}

// Clear empties the buffer in O(1) by resetting the indices. Storage is not
// zeroed: stale values stay in the arena region until overwritten.
func (b *Buffer[T]) Clear() error {
	if b == nil {
		return errors.ErrNilBuffer
	}

	b.cs.Enter()
	defer b.cs.Exit()

	b.start = 0
	b.size = 0

	b.stats.RecordClear()
	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.recordClear(b.capacity)
	}

	return nil
}

// Stats returns buffer statistics (always available for observability).
func (b *Buffer[T]) Stats() *Statistics {
	if b == nil {
		return nil
	}
	return b.stats
}
