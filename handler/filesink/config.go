package filesink

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/jaguarcode/asynclog/formatter"
)

// DefaultFilename is used when Config.Filename is empty
const DefaultFilename = "log.txt"

// Config holds configuration for the file sink
type Config struct {
	// Filename is the path to the log file (default: log.txt). The file
	// is truncated when the worker opens it.
	Filename string
	// Mode is the permission used if the file has to be created (default: 0644)
	Mode os.FileMode
	// Formatter to use (default: LineFormatter)
	Formatter formatter.Formatter
	// Diagnostics receives I/O failures (default: NewDiagnostics(os.Stderr))
	Diagnostics *zap.Logger
	// QueueHint is the initial queue capacity (default: 64). The queue
	// is unbounded; this only avoids early reallocations.
	QueueHint int
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Filename == "" {
		cfg.Filename = DefaultFilename
	}
	if cfg.Mode == 0 {
		cfg.Mode = 0o644
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter()
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = NewDiagnostics(os.Stderr)
	}
	if cfg.QueueHint == 0 {
		cfg.QueueHint = 64
	}
}

func (cfg *Config) validate() error {
	if cfg.Mode&^os.ModePerm != 0 {
		return errors.Newf("file mode %v has bits outside the permission mask", cfg.Mode)
	}
	if cfg.QueueHint < 0 {
		return errors.Newf("queue hint must not be negative, got %d", cfg.QueueHint)
	}
	return nil
}
