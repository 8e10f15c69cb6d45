package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	Capacity    int
	ArenaSize   int
	Producers   int
	Interval    time.Duration
	Duration    time.Duration
	MetricsPort int
	LogLevel    string
	LogFormat   string
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.IntVar(&cfg.Capacity, "capacity",
		getEnvInt("RINGBUFFER_CAPACITY", 1024),
		"Buffer capacity in elements (env: RINGBUFFER_CAPACITY)")

	flag.IntVar(&cfg.ArenaSize, "arena-size",
		getEnvInt("RINGBUFFER_ARENA_SIZE", 1<<20),
		"Arena region size in bytes (env: RINGBUFFER_ARENA_SIZE)")

	flag.IntVar(&cfg.Producers, "producers",
		getEnvInt("RINGBUFFER_PRODUCERS", 4),
		"Number of producer goroutines (env: RINGBUFFER_PRODUCERS)")

	flag.DurationVar(&cfg.Interval, "interval",
		getEnvDuration("RINGBUFFER_INTERVAL", time.Millisecond),
		"Per-producer sample interval (env: RINGBUFFER_INTERVAL)")

	flag.DurationVar(&cfg.Duration, "duration",
		getEnvDuration("RINGBUFFER_DURATION", 0),
		"Run duration, 0 to run until signalled (env: RINGBUFFER_DURATION)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("RINGBUFFER_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: RINGBUFFER_METRICS_PORT)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("RINGBUFFER_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: RINGBUFFER_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("RINGBUFFER_LOG_FORMAT", "json"),
		"Log format: json, text (env: RINGBUFFER_LOG_FORMAT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d", cfg.Capacity)
	}

	if cfg.ArenaSize <= 0 {
		return fmt.Errorf("invalid arena size: %d", cfg.ArenaSize)
	}

	if cfg.Producers <= 0 {
		return fmt.Errorf("invalid producer count: %d", cfg.Producers)
	}

	if cfg.Interval <= 0 {
		return fmt.Errorf("invalid interval: %s", cfg.Interval)
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	// Validate metrics port
	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Ring Buffer Driver

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Run with a small buffer and verbose logging
  %s --capacity=64 --log-level=debug --log-format=text

  # Run for ten seconds with metrics exposed
  %s --duration=10s --metrics-port=9090

  # Run with environment variables
  export RINGBUFFER_CAPACITY=4096
  export RINGBUFFER_METRICS_PORT=9090
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
