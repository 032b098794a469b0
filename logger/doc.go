// Package logger is a small convenience layer over a handler.Handler.
//
// A Logger is immutable after construction. The handler and the line
// prefix are set once via the Builder and never modified, so a Logger
// is safe for concurrent use without any locking of its own; ordering
// and persistence are entirely the handler's business.
//
//	s, err := filesink.New(filesink.Config{Filename: "log.txt"})
//	if err != nil {
//	    return err
//	}
//	log := logger.NewBuilder().WithHandler(s).Build()
//	defer log.Close()
//
//	log.Logf("Log entry %d from thread %d", i, id)
//
// Child loggers created with With share the handler and extend the
// prefix:
//
//	workerLog := log.With("[worker 3] ")
//
// The package-level functions delegate to a default Logger that
// discards everything until SetDefault installs a real one.
package logger
