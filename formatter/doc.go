// Package formatter defines how queued entries are serialized into the
// bytes a sink writes.
//
// A Formatter formats directly into a caller-provided bytes.Buffer, so a
// sink worker can reuse one buffer for its whole lifetime. Every
// formatter emits exactly one '\n'-terminated line per entry.
//
// LineFormatter writes the line as given and is what file sinks use by
// default. TextFormatter prefixes the time the line was accepted, using
// time.AppendFormat to avoid a per-call string allocation.
//
// The Format helper uses a pooled buffer internally. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log line
// from permanently inflating memory usage.
package formatter
