package core

import (
	"sync"
	"time"
)

// Entry is a single log line waiting in a sink queue
type Entry struct {
	// Time is when the line was accepted by the sink
	Time time.Time
	// Line is the text as passed by the caller, without a trailing newline
	Line string
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool, stamped with the current time
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// NewEntry retrieves a pooled Entry carrying line
func NewEntry(line string) *Entry {
	e := GetEntry()
	e.Line = line
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Line = ""
	e.Time = time.Time{}
	entryPool.Put(e)
}
