package logger

import (
	"fmt"
	"io"

	"github.com/jaguarcode/asynclog/handler"
)

// Logger is a thin, immutable front end for a handler.Handler
type Logger struct {
	handler handler.Handler
	prefix  string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	prefix  string
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithPrefix sets text prepended to every line
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler: b.handler,
		prefix:  b.prefix,
	}
}

// With creates a new Logger whose prefix is extended by prefix. The
// receiver is not modified.
func (l *Logger) With(prefix string) *Logger {
	return &Logger{
		handler: l.handler,
		prefix:  l.prefix + prefix,
	}
}

// Log sends msg to the handler
func (l *Logger) Log(msg string) {
	if l.handler == nil {
		return
	}
	if l.prefix != "" {
		msg = l.prefix + msg
	}
	l.handler.Log(msg)
}

// Logf formats according to a format specifier and logs the result
func (l *Logger) Logf(format string, args ...interface{}) {
	if l.handler == nil {
		return
	}
	l.Log(fmt.Sprintf(format, args...))
}

// Writer returns an io.Writer that logs each written line through l
func (l *Logger) Writer() io.Writer {
	return handler.NewLineWriter(logHandler{l})
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

// logHandler routes LineWriter output through the logger's prefix.
// Closing it is a no-op; the owner closes the Logger.
type logHandler struct {
	l *Logger
}

func (h logHandler) Log(line string) { h.l.Log(line) }

func (h logHandler) Close() error { return nil }
