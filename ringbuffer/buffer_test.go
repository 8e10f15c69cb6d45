package ringbuffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eagletrt/libring-buffer-sw/arena"
	cerrors "github.com/eagletrt/libring-buffer-sw/errors"
	"github.com/eagletrt/libring-buffer-sw/metric"
)

func newTestArena(t *testing.T) *arena.Arena {
	t.Helper()
	a, err := arena.New(1 << 16)
	require.NoError(t, err)
	return a
}

func TestNewValidation(t *testing.T) {
	a := newTestArena(t)

	for _, capacity := range []int{0, -1} {
		_, err := New[int32](capacity, a)
		require.Error(t, err)
		assert.True(t, cerrors.IsInvalid(err))
		assert.ErrorIs(t, err, cerrors.ErrZeroCapacity)
	}

	_, err := New[int32](10, nil)
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalid(err))
	assert.ErrorIs(t, err, cerrors.ErrNilArena)
}

func TestNewArenaExhausted(t *testing.T) {
	a, err := arena.New(16)
	require.NoError(t, err)

	_, err = New[int64](100, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrArenaExhausted)
	assert.True(t, cerrors.IsFatal(err))
}

func TestInitialState(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](5, a)
	require.NoError(t, err)

	assert.True(t, buf.IsEmpty())
	assert.False(t, buf.IsFull())
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 5, buf.Cap())
	assert.Nil(t, buf.PeekFront())
	assert.Nil(t, buf.PeekBack())
}

func TestNilBuffer(t *testing.T) {
	var buf *Buffer[int32]

	assert.True(t, buf.IsEmpty())
	assert.False(t, buf.IsFull())
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 0, buf.Cap())
	assert.Nil(t, buf.PeekFront())
	assert.Nil(t, buf.PeekBack())
	assert.Nil(t, buf.Stats())

	assert.ErrorIs(t, buf.PushBack(1), cerrors.ErrNilBuffer)
	assert.ErrorIs(t, buf.PushFront(1), cerrors.ErrNilBuffer)
	_, err := buf.PopFront()
	assert.ErrorIs(t, err, cerrors.ErrNilBuffer)
	_, err = buf.PopBack()
	assert.ErrorIs(t, err, cerrors.ErrNilBuffer)
	_, err = buf.Front()
	assert.ErrorIs(t, err, cerrors.ErrNilBuffer)
	_, err = buf.Back()
	assert.ErrorIs(t, err, cerrors.ErrNilBuffer)
	assert.ErrorIs(t, buf.Clear(), cerrors.ErrNilBuffer)

	// Nil-handle errors classify as invalid, not transient
	assert.True(t, cerrors.IsInvalid(buf.PushBack(1)))
}

func TestFIFO(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](8, a)
	require.NoError(t, err)

	for i := int32(1); i <= 6; i++ {
		require.NoError(t, buf.PushBack(i))
	}

	for i := int32(1); i <= 6; i++ {
		v, err := buf.PopFront()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, buf.IsEmpty())
}

func TestLIFO(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](8, a)
	require.NoError(t, err)

	for i := int32(1); i <= 6; i++ {
		require.NoError(t, buf.PushBack(i))
	}

	for i := int32(6); i >= 1; i-- {
		v, err := buf.PopBack()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, buf.IsEmpty())
}

func TestPushFrontOrdering(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	// Front pushes reverse, so popping from the front restores input order
	require.NoError(t, buf.PushFront(3))
	require.NoError(t, buf.PushFront(2))
	require.NoError(t, buf.PushFront(1))

	for i := int32(1); i <= 3; i++ {
		v, err := buf.PopFront()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestCapacityInvariant(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](3, a)
	require.NoError(t, err)

	check := func() {
		assert.GreaterOrEqual(t, buf.Len(), 0)
		assert.LessOrEqual(t, buf.Len(), buf.Cap())
	}

	// Mixed sequence exercising both ends, rejections included
	ops := []func() error{
		func() error { return buf.PushBack(1) },
		func() error { return buf.PushFront(2) },
		func() error { return buf.PushBack(3) },
		func() error { return buf.PushBack(4) }, // full
		func() error { _, err := buf.PopFront(); return err },
		func() error { _, err := buf.PopBack(); return err },
		func() error { return buf.PushFront(5) },
		func() error { _, err := buf.PopBack(); return err },
		func() error { _, err := buf.PopFront(); return err },
		func() error { _, err := buf.PopFront(); return err }, // empty
		func() error { return buf.Clear() },
	}

	for _, op := range ops {
		_ = op()
		check()
	}
}

func TestWraparound(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	// The first slot of the backing array holds the initial front
	firstSlot := func() *int32 {
		require.NoError(t, buf.PushBack(0))
		p := buf.PeekFront()
		_, err := buf.PopFront()
		require.NoError(t, err)
		require.NoError(t, buf.Clear())
		return p
	}()

	for _, v := range []int32{10, 20, 30, 40} {
		require.NoError(t, buf.PushBack(v))
	}
	require.True(t, buf.IsFull())

	v, err := buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 10, v)

	// This push wraps: the value must land back at physical index 0
	require.NoError(t, buf.PushBack(50))
	assert.Same(t, firstSlot, buf.PeekBack())

	// Remaining values still come out in order from both ends
	v, err = buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 20, v)

	v, err = buf.PopBack()
	require.NoError(t, err)
	assert.EqualValues(t, 50, v)

	v, err = buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 30, v)

	v, err = buf.PopBack()
	require.NoError(t, err)
	assert.EqualValues(t, 40, v)

	assert.True(t, buf.IsEmpty())
}

func TestPushFrontWrapGuard(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	// start is 0, so the first front push must wrap to the last slot
	require.NoError(t, buf.PushFront(99))
	require.NoError(t, buf.PushBack(1))

	v, err := buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 99, v)

	v, err = buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
}

func TestFullBoundary(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](2, a)
	require.NoError(t, err)

	require.NoError(t, buf.PushBack(1))
	require.NoError(t, buf.PushBack(2))
	require.True(t, buf.IsFull())

	err = buf.PushBack(3)
	assert.ErrorIs(t, err, cerrors.ErrBufferFull)
	err = buf.PushFront(3)
	assert.ErrorIs(t, err, cerrors.ErrBufferFull)
	assert.True(t, cerrors.IsTransient(err))

	// Rejected pushes leave the contents untouched
	assert.Equal(t, 2, buf.Len())
	v, err := buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	v, err = buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 2, v)
}

func TestEmptyBoundary(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](2, a)
	require.NoError(t, err)

	_, err = buf.PopFront()
	assert.ErrorIs(t, err, cerrors.ErrBufferEmpty)
	_, err = buf.PopBack()
	assert.ErrorIs(t, err, cerrors.ErrBufferEmpty)
	_, err = buf.Front()
	assert.ErrorIs(t, err, cerrors.ErrBufferEmpty)
	_, err = buf.Back()
	assert.ErrorIs(t, err, cerrors.ErrBufferEmpty)
	assert.True(t, cerrors.IsTransient(err))

	// An empty pop must not disturb the front position
	require.NoError(t, buf.PushBack(7))
	v, err := buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)
}

func TestClearIdempotence(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	for _, v := range []int32{1, 2, 3} {
		require.NoError(t, buf.PushBack(v))
	}

	require.NoError(t, buf.Clear())
	assert.True(t, buf.IsEmpty())
	assert.Equal(t, 0, buf.Len())

	// Clearing twice is the same as clearing once
	require.NoError(t, buf.Clear())
	assert.True(t, buf.IsEmpty())

	// Buffer stays fully usable afterwards
	require.NoError(t, buf.PushBack(42))
	v, err := buf.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)
}

func TestPeekAliasing(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	item := int32(11)
	require.NoError(t, buf.PushBack(item))

	p := buf.PeekFront()
	require.NotNil(t, p)
	assert.EqualValues(t, 11, *p)

	// Push copies: the stored element is not the caller's variable
	assert.NotSame(t, &item, p)
	item = 99
	assert.EqualValues(t, 11, *p)

	// The pointer reflects the latest write at that logical position
	*p = 33
	v, err := buf.Front()
	require.NoError(t, err)
	assert.EqualValues(t, 33, v)
}

func TestPeekBack(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](4, a)
	require.NoError(t, err)

	require.NoError(t, buf.PushBack(1))
	require.NoError(t, buf.PushBack(2))

	p := buf.PeekBack()
	require.NotNil(t, p)
	assert.EqualValues(t, 2, *p)

	// Front and back coincide with a single element
	_, err = buf.PopBack()
	require.NoError(t, err)
	assert.Same(t, buf.PeekFront(), buf.PeekBack())
}

// TestConcreteScenario walks the canonical usage sequence end to end.
func TestConcreteScenario(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[int32](10, a)
	require.NoError(t, err)

	for i := int32(1); i <= 5; i++ {
		require.NoError(t, buf.PushBack(i))
	}

	assert.Equal(t, 5, buf.Len())

	front, err := buf.Front()
	require.NoError(t, err)
	assert.EqualValues(t, 1, front)

	back := buf.PeekBack()
	require.NotNil(t, back)
	assert.EqualValues(t, 5, *back)

	for i := int32(5); i >= 1; i-- {
		v, err := buf.PopBack()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, buf.Len())

	// Clear on an already-empty buffer succeeds and stays empty
	require.NoError(t, buf.Clear())
	assert.True(t, buf.IsEmpty())
	assert.Nil(t, buf.PeekFront())
}

func TestStatistics(t *testing.T) {
	a := newTestArena(t)

	buf, err := New[string](2, a)
	require.NoError(t, err)

	require.NoError(t, buf.PushBack("a"))
	require.NoError(t, buf.PushFront("b"))
	require.Error(t, buf.PushBack("c")) // full

	_, _ = buf.Front()
	_ = buf.PeekBack()

	_, err = buf.PopFront()
	require.NoError(t, err)
	_, err = buf.PopBack()
	require.NoError(t, err)
	_, err = buf.PopBack()
	require.Error(t, err) // empty

	require.NoError(t, buf.Clear())

	s := buf.Stats().Summary()
	assert.EqualValues(t, 1, s.PushesBack)
	assert.EqualValues(t, 1, s.PushesFront)
	assert.EqualValues(t, 1, s.PopsFront)
	assert.EqualValues(t, 1, s.PopsBack)
	assert.EqualValues(t, 2, s.Peeks)
	assert.EqualValues(t, 1, s.FullRejections)
	assert.EqualValues(t, 1, s.EmptyRejections)
	assert.EqualValues(t, 1, s.Clears)
	assert.EqualValues(t, 0, s.CurrentSize)
	assert.EqualValues(t, 2, s.MaxSize)
	assert.InDelta(t, 1.0/3.0, s.RejectionRate, 0.001)
}

func TestStatisticsReset(t *testing.T) {
	stats := NewStatistics()
	stats.PushBack()
	stats.PopFront()
	stats.UpdateSize(3)

	stats.Reset()
	assert.EqualValues(t, 0, stats.Pushes())
	assert.EqualValues(t, 0, stats.Pops())
	assert.EqualValues(t, 0, stats.CurrentSize())
	assert.EqualValues(t, 0, stats.MaxSize())
}

func TestMutexSectionConcurrency(t *testing.T) {
	a := newTestArena(t)

	var cs MutexSection
	buf, err := New[int32](64, a, WithCriticalSection[int32](&cs))
	require.NoError(t, err)

	const (
		producers = 4
		perWorker = 1000
	)

	var wg sync.WaitGroup
	var consumed int64
	var consumedMu sync.Mutex

	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				for buf.PushBack(1) != nil {
					// full, let a consumer drain
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		total := int64(0)
		for total < producers*perWorker {
			if v, err := buf.PopFront(); err == nil {
				total += int64(v)
			}
		}
		consumedMu.Lock()
		consumed = total
		consumedMu.Unlock()
	}()

	wg.Wait()
	<-done

	consumedMu.Lock()
	defer consumedMu.Unlock()
	assert.EqualValues(t, producers*perWorker, consumed)
	assert.True(t, buf.IsEmpty())
}

func TestFuncSection(t *testing.T) {
	a := newTestArena(t)

	var enters, exits int
	cs := FuncSection{
		EnterFn: func() { enters++ },
		ExitFn:  func() { exits++ },
	}

	buf, err := New[int32](2, a, WithCriticalSection[int32](cs))
	require.NoError(t, err)

	require.NoError(t, buf.PushBack(1))
	_, err = buf.PopFront()
	require.NoError(t, err)
	_ = buf.PeekFront()
	require.NoError(t, buf.Clear())

	// Every bracketed operation pairs enter with exit
	assert.Equal(t, enters, exits)
	assert.Equal(t, 4, enters)

	// Nil callbacks are tolerated
	empty := FuncSection{}
	empty.Enter()
	empty.Exit()
}

func TestSharedArena(t *testing.T) {
	a, err := arena.New(1 << 12)
	require.NoError(t, err)

	first, err := New[int32](16, a)
	require.NoError(t, err)
	second, err := New[int64](16, a)
	require.NoError(t, err)

	require.NoError(t, first.PushBack(1))
	require.NoError(t, second.PushBack(2))

	// Buffers carved from one arena stay independent
	v1, err := first.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 1, v1)
	v2, err := second.PopFront()
	require.NoError(t, err)
	assert.EqualValues(t, 2, v2)
}

func TestStructElements(t *testing.T) {
	type sample struct {
		Timestamp uint64
		Channel   uint16
		Value     float64
	}

	a := newTestArena(t)

	buf, err := New[sample](8, a)
	require.NoError(t, err)

	in := sample{Timestamp: 123, Channel: 7, Value: 3.5}
	require.NoError(t, buf.PushBack(in))

	out, err := buf.PopFront()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWithMetrics(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	a := newTestArena(t)

	buf, err := New[int32](4, a, WithMetrics[int32](registry, "test_buffer"))
	require.NoError(t, err)

	require.NoError(t, buf.PushBack(1))
	require.NoError(t, buf.PushFront(2))
	_, err = buf.PopFront()
	require.NoError(t, err)
	_, err = buf.PopBack()
	require.NoError(t, err)
	_, err = buf.PopBack()
	require.Error(t, err)

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[fam.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[fam.GetName()] += m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["libring_buffer_pushes_total"])
	assert.Equal(t, 2.0, values["libring_buffer_pops_total"])
	assert.Equal(t, 1.0, values["libring_buffer_empty_rejections_total"])
	assert.Equal(t, 0.0, values["libring_buffer_size"])
	assert.Equal(t, 1.0, values["libring_core_buffers_active"])
	assert.Equal(t, 4.0, values["libring_core_operations_total"])
	assert.Equal(t, 1.0, values["libring_core_operation_failures_total"])
}

func TestWithMetricsDuplicatePrefix(t *testing.T) {
	registry := metric.NewMetricsRegistry()
	a := newTestArena(t)

	_, err := New[int32](4, a, WithMetrics[int32](registry, "dup"))
	require.NoError(t, err)

	_, err = New[int32](4, a, WithMetrics[int32](registry, "dup"))
	require.Error(t, err, "duplicate prefix must be rejected, not silently ignored")
}
