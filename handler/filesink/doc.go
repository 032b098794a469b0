// Package filesink provides the asynchronous file sink: a Handler that
// accepts lines from any number of goroutines and persists them to a
// single file from one dedicated background goroutine.
//
// The file is opened, written and closed only on that worker goroutine.
// Callers of Log never touch the file; they append to a mutex-guarded
// FIFO and signal a sync.Cond. The worker drains the queue whenever it
// is woken and exits once the queue is empty and Close has set the
// shutdown flag.
//
// Close sets the flag and broadcasts while holding the queue mutex, then
// releases the mutex and waits for the worker to finish. The worker
// checks the flag under the same mutex immediately before it sleeps, so
// the wake-up cannot be missed.
//
// I/O failures never reach callers of Log or Close. They are reported
// once to the Diagnostics logger, recorded for Err, and from then on
// every queued or newly logged line is dropped and counted in Stats.
package filesink
