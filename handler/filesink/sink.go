package filesink

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jaguarcode/asynclog/core"
	"github.com/jaguarcode/asynclog/formatter"
	"github.com/jaguarcode/asynclog/handler"
)

var (
	_ handler.Handler       = (*Sink)(nil)
	_ handler.StatsProvider = (*Sink)(nil)
)

// Sink is an asynchronous file sink. Lines passed to Log are queued and
// written, in queue order, by a single background goroutine that owns
// the output file.
type Sink struct {
	id        uuid.UUID
	filename  string
	mode      os.FileMode
	formatter formatter.Formatter
	diag      *zap.Logger
	stats     *handler.Stats

	// mu guards everything below it.
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []*core.Entry
	closing bool  // set once by Close, never cleared
	exited  bool  // worker will not write again; new lines are dropped
	err     error // first I/O failure, if any

	done chan struct{} // closed when the worker has returned
}

// New starts a sink writing to cfg.Filename. The file is opened by the
// worker goroutine, not by New, so an unwritable path does not make New
// fail; see Err.
func New(cfg Config) (*Sink, error) {
	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, newInitializationError(err)
	}

	s := &Sink{
		id:        uuid.New(),
		filename:  cfg.Filename,
		mode:      cfg.Mode,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		queue:     make([]*core.Entry, 0, cfg.QueueHint),
		done:      make(chan struct{}),
	}
	s.diag = cfg.Diagnostics.With(
		zap.String("sink", s.id.String()),
		zap.String("file", s.filename),
	)
	s.cond = sync.NewCond(&s.mu)

	go s.run(cfg.QueueHint)

	return s, nil
}

// Log queues line and wakes the worker. Lines from one goroutine are
// written in the order they were logged. Lines logged after the worker
// has stopped are dropped.
func (s *Sink) Log(line string) {
	e := core.NewEntry(line)

	s.mu.Lock()
	if s.exited {
		s.mu.Unlock()
		core.PutEntry(e)
		s.stats.AddDropped(1)
		return
	}
	s.queue = append(s.queue, e)
	s.stats.IncrementEnqueued()
	s.cond.Signal()
	s.mu.Unlock()
}

// Close asks the worker to drain the queue and stop, then waits for it.
// Every line logged before Close was called is written unless the file
// failed. Close is safe to call more than once and always returns nil;
// use Err to learn about I/O failures.
func (s *Sink) Close() error {
	s.mu.Lock()
	if !s.closing {
		s.closing = true
		s.cond.Broadcast()
	}
	s.mu.Unlock()

	// Must not hold mu here: the worker needs it to observe closing.
	<-s.done
	return nil
}

// Err returns the I/O failure that stopped the worker, if any. The
// result is a *SinkIOError matching ErrSinkIO.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() handler.Snapshot {
	return s.stats.GetSnapshot()
}

// Filename returns the path the sink writes to
func (s *Sink) Filename() string {
	return s.filename
}

// ID identifies the sink in diagnostics
func (s *Sink) ID() uuid.UUID {
	return s.id
}
