package filesink

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInitialization matches every error returned by New
	ErrInitialization = errors.New("log sink initialization failed")
	// ErrSinkIO matches every I/O failure recorded by the worker
	ErrSinkIO = errors.New("log sink I/O failed")
)

// InitializationError is returned by New when the sink could not be started.
type InitializationError struct {
	Err error
}

func newInitializationError(err error) error {
	return &InitializationError{Err: errors.Wrap(err, "invalid config")}
}

func (e *InitializationError) Error() string {
	return "filesink: " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

func (e *InitializationError) Is(target error) bool { return target == ErrInitialization }

// Operations reported in SinkIOError.Op
const (
	OpOpen  = "open"
	OpWrite = "write"
	OpClose = "close"
)

// SinkIOError records why the worker stopped writing. Once one has been
// recorded the sink drops every further line.
type SinkIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *SinkIOError) Error() string {
	return fmt.Sprintf("filesink: %s failed: %v", e.Op, e.Err)
}

func (e *SinkIOError) Unwrap() error { return e.Err }

func (e *SinkIOError) Is(target error) bool { return target == ErrSinkIO }
