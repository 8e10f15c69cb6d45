// Package main implements a demonstration driver for the ring buffer
// library. It pushes synthetic telemetry samples through an arena-backed
// buffer from a set of producers while a consumer drains it, and can expose
// the buffer's Prometheus metrics over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/eagletrt/libring-buffer-sw/arena"
	"github.com/eagletrt/libring-buffer-sw/errors"
	"github.com/eagletrt/libring-buffer-sw/metric"
	"github.com/eagletrt/libring-buffer-sw/pkg/retry"
	"github.com/eagletrt/libring-buffer-sw/ringbuffer"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ringbuffer"
)

// sample is the telemetry payload pushed through the buffer. Plain value
// fields only: the backing storage is arena memory.
type sample struct {
	Timestamp int64
	Channel   uint16
	Value     float64
}

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting ring buffer driver",
		"version", Version,
		"build_time", BuildTime,
		"capacity", cliCfg.Capacity,
		"arena_size", cliCfg.ArenaSize,
		"producers", cliCfg.Producers)

	registry := metric.NewMetricsRegistry()

	region, err := arena.New(cliCfg.ArenaSize,
		arena.WithMetrics(registry, "driver_arena"))
	if err != nil {
		return fmt.Errorf("create arena: %w", err)
	}
	defer region.Release()

	var cs ringbuffer.MutexSection
	buf, err := ringbuffer.New[sample](cliCfg.Capacity, region,
		ringbuffer.WithCriticalSection[sample](&cs),
		ringbuffer.WithMetrics[sample](registry, "driver_buffer"),
	)
	if err != nil {
		return fmt.Errorf("create buffer: %w", err)
	}

	if cliCfg.MetricsPort > 0 {
		startMetricsServer(cliCfg.MetricsPort, registry)
	}

	return runPipeline(buf, cliCfg)
}

// startMetricsServer serves /metrics in the background. Serve errors are
// logged, not fatal: the pipeline works without observability.
func startMetricsServer(port int, registry *metric.MetricsRegistry) {
	server := metric.NewServer(port, "/metrics", registry)
	go func() {
		slog.Info("Metrics server listening", "address", server.Address())
		if err := server.Start(); err != nil {
			slog.Error("Metrics server stopped", "error", err)
		}
	}()
}

// runPipeline drives producers and a consumer until the duration elapses or
// a shutdown signal arrives.
func runPipeline(buf *ringbuffer.Buffer[sample], cfg *CLIConfig) error {
	signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	ctx := signalCtx
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(signalCtx, cfg.Duration)
		defer cancel()
	}

	var wg sync.WaitGroup
	wg.Add(cfg.Producers)
	for p := 0; p < cfg.Producers; p++ {
		go func(channel uint16) {
			defer wg.Done()
			produce(ctx, buf, channel, cfg.Interval)
		}(uint16(p))
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		consume(ctx, buf)
	}()

	<-ctx.Done()
	wg.Wait()

	logSummary(buf)
	slog.Info("Ring buffer driver shutdown complete")
	return nil
}

// produce pushes one sample per interval, retrying transiently full pushes
// with tight backoff.
func produce(ctx context.Context, buf *ringbuffer.Buffer[sample], channel uint16, interval time.Duration) {
	cfg := retry.Spin()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s := sample{
			Timestamp: time.Now().UnixNano(),
			Channel:   channel,
			Value:     rand.Float64() * 100,
		}

		err := retry.Do(ctx, cfg, func() error {
			err := buf.PushBack(s)
			if err != nil && !errors.IsTransient(err) {
				return retry.NonRetryable(err)
			}
			return err
		})
		if err != nil && ctx.Err() == nil {
			slog.Warn("Sample dropped", "channel", channel, "error", err)
		}
	}
}

// consume drains the buffer, sleeping briefly when it runs dry.
func consume(ctx context.Context, buf *ringbuffer.Buffer[sample]) {
	var count, latest int64
	for {
		if ctx.Err() != nil {
			slog.Info("Consumer finished", "consumed", count, "last_timestamp", latest)
			return
		}

		s, err := buf.PopFront()
		if err != nil {
			time.Sleep(100 * time.Microsecond)
			continue
		}

		count++
		latest = s.Timestamp
		if count%1000 == 0 {
			slog.Debug("Consumed batch",
				"count", count,
				"channel", s.Channel,
				"value", s.Value)
		}
	}
}

// logSummary reports the buffer's built-in statistics at shutdown.
func logSummary(buf *ringbuffer.Buffer[sample]) {
	s := buf.Stats().Summary()
	slog.Info("Buffer statistics",
		"pushes", s.PushesFront+s.PushesBack,
		"pops", s.PopsFront+s.PopsBack,
		"full_rejections", s.FullRejections,
		"empty_rejections", s.EmptyRejections,
		"max_size", s.MaxSize,
		"rejection_rate", s.RejectionRate,
		"throughput", s.Throughput,
		"uptime", s.Uptime)
}
