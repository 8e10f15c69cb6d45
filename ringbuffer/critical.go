package ringbuffer

import "sync"

// CriticalSection brackets every mutating buffer operation. The buffer holds
// no lock of its own: callers choose the protection that fits their
// environment by injecting a strategy at construction.
//
// Enter and Exit are always called in pairs on the same goroutine. The buffer
// never nests sections, so the strategy does not need to be re-entrant.
type CriticalSection interface {
	Enter()
	Exit()
}

// NopSection is the default strategy. It provides no protection and no
// overhead, matching single-goroutine use where the caller serializes access
// externally.
type NopSection struct{}

// Enter is a no-op.
func (NopSection) Enter() {}

// Exit is a no-op.
func (NopSection) Exit() {}

// MutexSection protects the buffer with a mutex. The zero value is ready to
// use; share one instance per buffer.
type MutexSection struct {
	mu sync.Mutex
}

// Enter acquires the mutex.
func (s *MutexSection) Enter() { s.mu.Lock() }

// Exit releases the mutex.
func (s *MutexSection) Exit() { s.mu.Unlock() }

// FuncSection adapts a raw enter/exit function pair, for callers that already
// have interrupt-masking or lock primitives expressed as callbacks. Nil
// functions are treated as no-ops.
type FuncSection struct {
	EnterFn func()
	ExitFn  func()
}

// Enter invokes EnterFn when set.
func (s FuncSection) Enter() {
	if s.EnterFn != nil {
		s.EnterFn()
	}
}

// Exit invokes ExitFn when set.
func (s FuncSection) Exit() {
	if s.ExitFn != nil {
		s.ExitFn()
	}
}
