// Package logging configures the process-wide structured logger. Log output
// always goes to stderr: stdout is reserved for protocol traffic.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	once          sync.Once
	defaultLogger *slog.Logger
)

// Init sets up the global logger with the given minimum level and output.
// Only the first call has any effect.
func Init(level slog.Level, output io.Writer) {
	once.Do(func() {
		defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: level,
		}))
	})
}

// Get returns the shared logger, initializing it with stderr/info defaults
// if Init was never called.
func Get() *slog.Logger {
	once.Do(func() {
		defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	})
	return defaultLogger
}
