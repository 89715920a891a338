// Package logger provides logging functionality for the hypergraph desktop layer.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

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

// writerLogger is a thread-safe logger that writes one line per message.
type writerLogger struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDefaultLogger creates a new logger writing to stderr.
// Stdout is left to command output so diagnostics never mix with results.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger creates a new logger writing to the given writer.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

// Logf writes a formatted message with thread safety.
func (w *writerLogger) Logf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}

// OrNoop returns l, or a noop logger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NewNoopLogger()
	}
	return l
}
