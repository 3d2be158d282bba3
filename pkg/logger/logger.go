// Package logger provides logging functionality for the hookchain dispatcher.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// stderrLogger is a thread-safe logger that writes to stderr. The dispatcher
// must keep stdout free for the checking engine's own output, so its
// diagnostics go to the error stream.
type stderrLogger struct {
	mu sync.Mutex
}

// NewStderrLogger creates a new logger writing to stderr.
func NewStderrLogger() Logger {
	return &stderrLogger{}
}

// Logf writes a formatted message to stderr with thread safety.
func (d *stderrLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
