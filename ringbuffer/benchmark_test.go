package ringbuffer

import (
	"fmt"
	"testing"

	"github.com/eagletrt/libring-buffer-sw/arena"
	"github.com/eagletrt/libring-buffer-sw/metric"
)

func newBenchBuffer(b *testing.B, capacity int, options ...Option[int64]) *Buffer[int64] {
	b.Helper()
	a, err := arena.New(capacity*8 + 64)
	if err != nil {
		b.Fatal(err)
	}
	buf, err := New[int64](capacity, a, options...)
	if err != nil {
		b.Fatal(err)
	}
	return buf
}

// BenchmarkPushPopBack measures the queue-style hot path with the default
// no-op critical section.
func BenchmarkPushPopBack(b *testing.B) {
	for _, capacity := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("Nop_%d", capacity), func(b *testing.B) {
			buf := newBenchBuffer(b, capacity)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = buf.PushBack(int64(i))
				_, _ = buf.PopFront()
			}
		})
	}
}

// BenchmarkPushPopBackMutex measures the same path with mutex protection.
func BenchmarkPushPopBackMutex(b *testing.B) {
	for _, capacity := range []int{100, 1000} {
		b.Run(fmt.Sprintf("Mutex_%d", capacity), func(b *testing.B) {
			var cs MutexSection
			buf := newBenchBuffer(b, capacity, WithCriticalSection[int64](&cs))

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = buf.PushBack(int64(i))
				_, _ = buf.PopFront()
			}
		})
	}
}

// BenchmarkPushPopBackMetrics measures the dual-tracking overhead when
// Prometheus metrics are enabled.
func BenchmarkPushPopBackMetrics(b *testing.B) {
	registry := metric.NewMetricsRegistry()
	buf := newBenchBuffer(b, 1000, WithMetrics[int64](registry, "bench"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.PushBack(int64(i))
		_, _ = buf.PopFront()
	}
}

// BenchmarkDeque alternates ends to exercise both wraparound directions.
func BenchmarkDeque(b *testing.B) {
	buf := newBenchBuffer(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			_ = buf.PushFront(int64(i))
			_, _ = buf.PopBack()
		} else {
			_ = buf.PushBack(int64(i))
			_, _ = buf.PopFront()
		}
	}
}

// BenchmarkPeek measures the non-mutating read path.
func BenchmarkPeek(b *testing.B) {
	buf := newBenchBuffer(b, 100)
	_ = buf.PushBack(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.PeekFront()
	}
}
