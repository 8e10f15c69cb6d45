package arena

import (
	"sync"
	"unsafe"

	"github.com/eagletrt/libring-buffer-sw/errors"
)

// Arena is a fixed-capacity bump allocator. It reserves one contiguous,
// zeroed region up front and hands out aligned slices of it on demand.
// There is no per-allocation free: Reset rewinds the whole arena and
// Release invalidates every region it ever handed out.
type Arena struct {
	mu       sync.Mutex
	buf      []byte
	offset   int
	allocs   int64
	failures int64
	released bool
	metrics  *arenaMetrics
}

// New creates an arena backed by a single zeroed region of size bytes.
// The region is the arena's only allocation; everything handed out
// afterwards is carved from it.
func New(size int, opts ...Option) (*Arena, error) {
	if size <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidSize, "Arena", "New", "validate region size")
	}

	options := applyOptions(opts...)

	a := &Arena{
		buf: make([]byte, size),
	}

	if options.metricsReg != nil && options.metricsPrefix != "" {
		m, err := newArenaMetrics(options.metricsReg, options.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "Arena", "New", "metrics registration")
		}
		a.metrics = m
		a.metrics.recordCreate()
	}

	return a, nil
}

// AllocBytes hands out n zeroed bytes from the region, aligned for any
// scalar type. Returns ErrArenaExhausted when the region cannot satisfy
// the request and ErrArenaReleased after teardown.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	return a.alloc(n, 8)
}

// alloc is the bump allocator. align must be a power of two.
func (a *Arena) alloc(size, align int) ([]byte, error) {
	if size <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidSize, "Arena", "AllocBytes", "validate allocation size")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil, errors.WrapFatal(errors.ErrArenaReleased, "Arena", "AllocBytes", "bump allocation")
	}

	offset := (a.offset + align - 1) &^ (align - 1)
	if offset+size > len(a.buf) {
		a.failures++
		if a.metrics != nil {
			a.metrics.recordFailure()
		}
		return nil, errors.WrapFatal(errors.ErrArenaExhausted, "Arena", "AllocBytes", "bump allocation")
	}

	region := a.buf[offset : offset+size : offset+size]
	delta := offset + size - a.offset
	a.offset = offset + size
	a.allocs++

	if a.metrics != nil {
		a.metrics.recordAlloc(delta, a.offset, len(a.buf))
	}

	return region, nil
}

// AllocSlice hands out a zeroed []T of length n carved from the arena's
// region, aligned for T.
//
// T must not contain pointers: the region is untyped memory as far as the
// garbage collector is concerned, so pointers stored through it would not
// keep their referents alive.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if a == nil {
		return nil, errors.WrapInvalid(errors.ErrNilArena, "Arena", "AllocSlice", "validate arena")
	}
	if n <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidSize, "Arena", "AllocSlice", "validate element count")
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	align := int(unsafe.Alignof(zero))
	if size == 0 {
		// Zero-sized types need no storage; a dedicated backing array
		// keeps the returned slice independent of the arena's region.
		return make([]T, n), nil
	}

	raw, err := a.alloc(size*n, align)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n), nil
}

// Reset rewinds the arena so the whole region is available again. The used
// prefix is re-zeroed: regions handed out after a Reset honor the same
// zeroed-at-acquisition contract as the first ones. Every slice handed out
// before the Reset becomes invalid.
func (a *Arena) Reset() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return errors.WrapFatal(errors.ErrArenaReleased, "Arena", "Reset", "rewind")
	}

	clear(a.buf[:a.offset])
	if a.metrics != nil {
		a.metrics.recordRewind(a.offset)
	}
	a.offset = 0

	return nil
}

// Release invalidates every region handed out by this arena and drops the
// backing memory. Using a previously acquired slice after Release is a
// caller error the arena cannot detect; further allocations fail with
// ErrArenaReleased.
func (a *Arena) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return
	}

	if a.metrics != nil {
		a.metrics.recordRelease(a.offset)
	}

	a.released = true
	a.buf = nil
	a.offset = 0
}

// Cap returns the total size of the backing region in bytes.
func (a *Arena) Cap() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buf)
}

// Used returns the number of bytes currently handed out, including
// alignment padding.
func (a *Arena) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

// Remaining returns the number of bytes still available.
func (a *Arena) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buf) - a.offset
}

// Stats is a snapshot of the arena's allocation state.
type Stats struct {
	Capacity    int     `json:"capacity"`
	Used        int     `json:"used"`
	Remaining   int     `json:"remaining"`
	Allocations int64   `json:"allocations"`
	Failures    int64   `json:"failures"`
	Utilization float64 `json:"utilization"`
	Released    bool    `json:"released"`
}

// Stats returns a snapshot of the arena's allocation state.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Stats{
		Capacity:    len(a.buf),
		Used:        a.offset,
		Remaining:   len(a.buf) - a.offset,
		Allocations: a.allocs,
		Failures:    a.failures,
		Released:    a.released,
	}
	if s.Capacity > 0 {
		s.Utilization = float64(s.Used) / float64(s.Capacity)
	}
	return s
}
