package formatter

import (
	"bytes"
	"time"

	"github.com/jaguarcode/asynclog/core"
)

// TextFormatter prefixes each line with the time it was accepted
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// FormatEntry writes "<timestamp> <line>\n" into buf
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(entry.Line)
	buf.WriteByte('\n')
}
