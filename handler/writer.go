package handler

import (
	"bytes"
)

// LineWriter adapts a Handler to io.Writer. Each '\n'-separated line of
// a Write becomes one Log call; a single trailing newline is consumed.
//
// LineWriter also has a no-op Sync, so it can be used directly as a
// zapcore.WriteSyncer.
type LineWriter struct {
	h Handler
}

// NewLineWriter returns a LineWriter feeding h
func NewLineWriter(h Handler) *LineWriter {
	return &LineWriter{h: h}
}

// Write logs every line in p and always reports len(p) bytes written
func (w *LineWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	rest := bytes.TrimSuffix(p, []byte{'\n'})
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			w.h.Log(string(rest))
			break
		}
		w.h.Log(string(rest[:i]))
		rest = rest[i+1:]
	}
	return len(p), nil
}

// Sync is a no-op; durability is the handler's concern
func (w *LineWriter) Sync() error {
	return nil
}
