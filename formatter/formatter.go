package formatter

import (
	"bytes"
	"sync"

	"github.com/jaguarcode/asynclog/core"
)

// Formatter turns an entry into the bytes written to the sink's file.
// Implementations must append exactly one line, terminated by '\n'.
type Formatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Format formats entry with f into a freshly allocated byte slice.
// Sinks format into their own buffer via FormatEntry; Format is for
// callers that need the bytes on their own.
func Format(f Formatter, entry *core.Entry) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
