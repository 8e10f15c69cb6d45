package ringbuffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer operation counters.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushesFront     int64
	pushesBack      int64
	popsFront       int64
	popsBack        int64
	peeks           int64
	fullRejections  int64
	emptyRejections int64
	clears          int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// PushFront records an insertion at the front.
func (s *Statistics) PushFront() {
	atomic.AddInt64(&s.pushesFront, 1)
}

// PushBack records an insertion at the back.
func (s *Statistics) PushBack() {
	atomic.AddInt64(&s.pushesBack, 1)
}

// PopFront records a removal from the front.
func (s *Statistics) PopFront() {
	atomic.AddInt64(&s.popsFront, 1)
}

// PopBack records a removal from the back.
func (s *Statistics) PopBack() {
	atomic.AddInt64(&s.popsBack, 1)
}

// Peek records a non-mutating read.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// RejectFull records a push rejected because the buffer was full.
func (s *Statistics) RejectFull() {
	atomic.AddInt64(&s.fullRejections, 1)
}

// RejectEmpty records a pop or read rejected because the buffer was empty.
func (s *Statistics) RejectEmpty() {
	atomic.AddInt64(&s.emptyRejections, 1)
}

// RecordClear records a bulk reset of the buffer.
func (s *Statistics) RecordClear() {
	atomic.AddInt64(&s.clears, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// PushesFront returns the number of front insertions.
func (s *Statistics) PushesFront() int64 {
	return atomic.LoadInt64(&s.pushesFront)
}

// PushesBack returns the number of back insertions.
func (s *Statistics) PushesBack() int64 {
	return atomic.LoadInt64(&s.pushesBack)
}

// Pushes returns the total number of successful insertions at either end.
func (s *Statistics) Pushes() int64 {
	return s.PushesFront() + s.PushesBack()
}

// PopsFront returns the number of front removals.
func (s *Statistics) PopsFront() int64 {
	return atomic.LoadInt64(&s.popsFront)
}

// PopsBack returns the number of back removals.
func (s *Statistics) PopsBack() int64 {
	return atomic.LoadInt64(&s.popsBack)
}

// Pops returns the total number of successful removals at either end.
func (s *Statistics) Pops() int64 {
	return s.PopsFront() + s.PopsBack()
}

// Peeks returns the total number of non-mutating reads.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// FullRejections returns the number of pushes rejected on a full buffer.
func (s *Statistics) FullRejections() int64 {
	return atomic.LoadInt64(&s.fullRejections)
}

// EmptyRejections returns the number of pops and reads rejected on an empty buffer.
func (s *Statistics) EmptyRejections() int64 {
	return atomic.LoadInt64(&s.emptyRejections)
}

// Clears returns the number of bulk resets.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// CurrentSize returns the current number of items in the buffer.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of items the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of successful pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// RejectionRate returns the fraction of push attempts rejected on a full
// buffer (0.0 to 1.0).
func (s *Statistics) RejectionRate() float64 {
	pushes := s.Pushes()
	rejections := s.FullRejections()

	attempts := pushes + rejections
	if attempts == 0 {
		return 0.0
	}

	return float64(rejections) / float64(attempts)
}

// Utilization returns the current buffer utilization (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the buffer has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushesFront, 0)
	atomic.StoreInt64(&s.pushesBack, 0)
	atomic.StoreInt64(&s.popsFront, 0)
	atomic.StoreInt64(&s.popsBack, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.fullRejections, 0)
	atomic.StoreInt64(&s.emptyRejections, 0)
	atomic.StoreInt64(&s.clears, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	PushesFront     int64         `json:"pushes_front"`
	PushesBack      int64         `json:"pushes_back"`
	PopsFront       int64         `json:"pops_front"`
	PopsBack        int64         `json:"pops_back"`
	Peeks           int64         `json:"peeks"`
	FullRejections  int64         `json:"full_rejections"`
	EmptyRejections int64         `json:"empty_rejections"`
	Clears          int64         `json:"clears"`
	CurrentSize     int64         `json:"current_size"`
	MaxSize         int64         `json:"max_size"`
	Throughput      float64       `json:"throughput"`
	RejectionRate   float64       `json:"rejection_rate"`
	Uptime          time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		PushesFront:     s.PushesFront(),
		PushesBack:      s.PushesBack(),
		PopsFront:       s.PopsFront(),
		PopsBack:        s.PopsBack(),
		Peeks:           s.Peeks(),
		FullRejections:  s.FullRejections(),
		EmptyRejections: s.EmptyRejections(),
		Clears:          s.Clears(),
		CurrentSize:     s.CurrentSize(),
		MaxSize:         s.MaxSize(),
		Throughput:      s.Throughput(),
		RejectionRate:   s.RejectionRate(),
		Uptime:          s.Uptime(),
	}
}
