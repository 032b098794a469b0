package filesink

import (
	"bufio"
	"bytes"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jaguarcode/asynclog/core"
)

const writeBufferSize = 4096

// run is the worker goroutine. It owns the output file for its whole
// lifetime: the file is opened here and closed here.
func (s *Sink) run(queueHint int) {
	defer close(s.done)

	file, err := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, s.mode)
	if err != nil {
		s.abandon(&SinkIOError{Op: OpOpen, Path: s.filename, Err: err})
		return
	}

	w := bufio.NewWriterSize(file, writeBufferSize)
	var buf bytes.Buffer
	buf.Grow(256)
	spare := make([]*core.Entry, 0, queueHint)

	s.mu.Lock()
	for {
		for len(s.queue) == 0 && !s.closing {
			s.cond.Wait()
		}

		if err := s.drainLocked(w, &buf, &spare); err != nil {
			s.mu.Unlock()
			_ = file.Close()
			s.abandon(&SinkIOError{Op: OpWrite, Path: s.filename, Err: err})
			return
		}

		// Queue is empty and mu is held, so no Log call can slip in
		// between this check and exited being set.
		if s.closing {
			break
		}
	}
	s.exited = true
	s.mu.Unlock()

	if err := multierr.Combine(w.Flush(), file.Close()); err != nil {
		s.abandon(&SinkIOError{Op: OpClose, Path: s.filename, Err: err})
	}
}

// drainLocked writes queued entries until the queue is empty. It is
// called with mu held and returns with mu held; mu is released while
// the batch is written so Log never waits on the file.
func (s *Sink) drainLocked(w *bufio.Writer, buf *bytes.Buffer, spare *[]*core.Entry) error {
	for len(s.queue) > 0 {
		batch := s.queue
		s.queue = *spare
		s.mu.Unlock()

		err := s.writeBatch(w, buf, batch)
		clear(batch)
		*spare = batch[:0]

		s.mu.Lock()
		if err != nil {
			return err
		}
	}
	return nil
}

// writeBatch formats and writes batch in order, then flushes. On
// failure the unwritten remainder is released and counted as dropped.
func (s *Sink) writeBatch(w *bufio.Writer, buf *bytes.Buffer, batch []*core.Entry) error {
	for i, e := range batch {
		buf.Reset()
		s.formatter.FormatEntry(e, buf)
		core.PutEntry(e)

		if _, err := w.Write(buf.Bytes()); err != nil {
			s.stats.AddDropped(1)
			s.dropEntries(batch[i+1:])
			return err
		}
		s.stats.IncrementWritten()
	}
	return w.Flush()
}

// abandon records err, stops the sink from accepting lines, drops what
// is still queued and reports the failure. Must be called without mu.
func (s *Sink) abandon(err *SinkIOError) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.exited = true
	pending := s.queue
	s.queue = nil
	s.mu.Unlock()

	s.dropEntries(pending)
	s.diag.Error("log sink stopped writing; further lines are dropped",
		zap.String("op", err.Op),
		zap.Int("dropped", len(pending)),
		zap.Error(err.Err),
	)
}

func (s *Sink) dropEntries(entries []*core.Entry) {
	for _, e := range entries {
		core.PutEntry(e)
	}
	s.stats.AddDropped(len(entries))
}
