package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// EnqueuedTotal counts lines accepted into the queue
	EnqueuedTotal atomic.Uint64
	// WrittenTotal counts lines handed to the output writer
	WrittenTotal atomic.Uint64
	// DroppedTotal counts lines that will never be written
	DroppedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEnqueued atomically increments the enqueued counter
func (s *Stats) IncrementEnqueued() {
	s.EnqueuedTotal.Add(1)
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	s.WrittenTotal.Add(1)
}

// AddDropped atomically adds n to the dropped counter
func (s *Stats) AddDropped(n int) {
	if n > 0 {
		s.DroppedTotal.Add(uint64(n))
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.EnqueuedTotal.Store(0)
	s.WrittenTotal.Store(0)
	s.DroppedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Enqueued uint64
	Written  uint64
	Dropped  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Enqueued: s.EnqueuedTotal.Load(),
		Written:  s.WrittenTotal.Load(),
		Dropped:  s.DroppedTotal.Load(),
	}
}
