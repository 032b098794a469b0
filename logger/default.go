package logger

import (
	"sync"

	"github.com/jaguarcode/asynclog/handler"
)

var (
	defaultLogger = NewBuilder().WithHandler(handler.Discard).Build()
	defaultMu     sync.RWMutex
)

// Default returns the default logger. Until SetDefault is called it
// discards everything; a file sink is never opened implicitly because
// that would truncate the file.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Log logs a line using the default logger
func Log(msg string) {
	Default().Log(msg)
}

// Logf logs a formatted line using the default logger
func Logf(format string, args ...interface{}) {
	Default().Logf(format, args...)
}

// With creates a new logger with an extended prefix
func With(prefix string) *Logger {
	return Default().With(prefix)
}
