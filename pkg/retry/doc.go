// Package retry provides simple exponential backoff retry logic for transient failures.
//
// # Overview
//
// This package offers a minimal retry mechanism with exponential backoff,
// designed for the transient conditions a fixed-capacity buffer produces: a
// full buffer that a consumer will drain, or an empty buffer that a producer
// will fill.
//
// # Core Functions
//
//   - Do: Execute function with retry and exponential backoff
//   - DoWithResult: Execute function with retry, returns both result and error
//
// # Configuration Presets
//
//   - DefaultConfig(): 3 attempts, 1ms-100ms delay (normal operations)
//   - Spin(): 10 attempts, 100µs-10ms delay (fast-draining buffers)
//   - Patient(): 30 attempts, 10ms-1s delay (slow consumers)
//
// # Usage Examples
//
// Push into a buffer that may be transiently full:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    return buf.PushBack(sample)
//	})
//
// Pop with a result:
//
//	sample, err := retry.DoWithResult(ctx, retry.Spin(), func() (Sample, error) {
//	    return buf.PopFront()
//	})
//
// Give up immediately on non-transient failures:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    if err := buf.PushBack(sample); err != nil {
//	        if !errors.IsTransient(err) {
//	            return retry.NonRetryable(err)
//	        }
//	        return err
//	    }
//	    return nil
//	})
//
// # Design Philosophy
//
// This package is intentionally minimal:
//
//   - No circuit breakers
//   - No metrics collection (use instrumentation at call site)
//   - No complex error classification (caller decides what to retry)
//   - Just exponential backoff with jitter
//
// # Context Cancellation
//
// All retry operations respect context cancellation and will immediately stop
// retrying when the context is cancelled, either during operation execution or
// during backoff delay.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The jitter mechanism uses a
// thread-safe random source to avoid contention.
package retry
