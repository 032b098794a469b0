// Package handler provides the Handler interface that log sinks
// implement, together with the pieces shared between sinks and the
// layers above them.
//
// A Handler accepts whole lines. Log is fire-and-forget: it must not
// block on I/O and has no error return, so failures of the underlying
// output are the handler's own business. Close flushes and joins any
// background work.
//
// Stats holds atomic enqueued, written and dropped counters that a
// handler can expose through StatsProvider. For a handler that has been
// closed cleanly, Enqueued equals Written; Dropped counts lines rejected
// because the handler could no longer write them.
//
// LineWriter turns any Handler into an io.Writer, which lets existing
// logging libraries (zap, logrus, the standard log package) write
// through a sink. Discard is a Handler that drops everything.
package handler
