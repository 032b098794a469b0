// Package core defines the shared types used across asynclog.
//
// An Entry is one accepted log line plus the time it was accepted. Entries
// travel from the producing goroutine through a sink's queue to the
// worker that writes them, so they are pooled via sync.Pool: producers
// obtain one with NewEntry and the consumer returns it with PutEntry once
// the line has been formatted. An Entry must not be touched after it has
// been handed back to the pool.
package core
