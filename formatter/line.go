package formatter

import (
	"bytes"

	"github.com/jaguarcode/asynclog/core"
)

// LineFormatter writes the entry's line verbatim followed by a newline.
// It is the default for file sinks.
type LineFormatter struct{}

// NewLineFormatter creates a new line formatter
func NewLineFormatter() LineFormatter {
	return LineFormatter{}
}

// FormatEntry writes entry.Line and a terminating '\n'
func (LineFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(entry.Line)
	buf.WriteByte('\n')
}
