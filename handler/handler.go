package handler

// Handler accepts log lines for asynchronous persistence
type Handler interface {
	// Log queues line for writing. It never blocks on I/O and never
	// reports an error.
	Log(line string)

	// Close flushes everything queued so far and releases resources.
	// Log must not be called once Close has started.
	Close() error
}

// StatsProvider is implemented by handlers that count their traffic
type StatsProvider interface {
	Stats() Snapshot
}

// Discard is a Handler that drops every line
var Discard Handler = discard{}

type discard struct{}

func (discard) Log(string) {}

func (discard) Close() error { return nil }
