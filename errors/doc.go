// Package errors provides standardized error handling patterns for the ring
// buffer library.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// A full buffer is transient — a consumer will drain it. An empty buffer is
// transient — a producer will fill it. A nil handle or zero capacity is
// invalid and no amount of retrying helps. An exhausted or released arena is
// fatal: the backing region is fixed at startup and cannot grow back.
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if buf.IsFull() {
//	    return errors.ErrBufferFull
//	}
//
// Wrap errors with context for debugging:
//
//	if _, err := arena.AllocSlice[int](a, capacity); err != nil {
//	    return errors.WrapFatal(err, "Buffer", "New", "storage acquisition")
//	}
//
// Check classification for retry logic:
//
//	if err := buf.PushBack(sample); err != nil {
//	    if errors.IsTransient(err) {
//	        // Full right now; retry with backoff.
//	    } else if errors.IsInvalid(err) {
//	        // Programming error; do not retry.
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Buffer", "PushBack", "insert")
//	errors.WrapInvalid(err, "Buffer", "New", "validate capacity")
//	errors.WrapFatal(err, "Arena", "AllocBytes", "bump allocation")
//
// # Hot Path Note
//
// The buffer's push/pop operations return the bare sentinels
// (ErrBufferFull, ErrBufferEmpty) without wrapping: steady-state operation
// must not allocate, and wrapping does. Construction and allocation paths,
// which run once, use the classified wrappers.
//
// # Retry Integration
//
// RetryConfig bridges into the pkg/retry framework:
//
//	cfg := errors.DefaultRetryConfig().ToRetryConfig()
//	err := retry.Do(ctx, cfg, func() error { return buf.PushBack(v) })
package errors
