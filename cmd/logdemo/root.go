package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jaguarcode/asynclog/formatter"
	"github.com/jaguarcode/asynclog/handler"
	"github.com/jaguarcode/asynclog/handler/filesink"
	"github.com/jaguarcode/asynclog/logger"
)

type options struct {
	file       string
	producers  int
	lines      int
	timestamps bool
	zapSummary bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "logdemo",
		Short:        "log numbered lines from concurrent producers into one file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.producers < 0 || opts.lines < 0 {
				return errors.New("--producers and --lines must not be negative")
			}
			return run(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", filesink.DefaultFilename, "log file to write (truncated on start)")
	cmd.Flags().IntVarP(&opts.producers, "producers", "p", 10, "number of producer goroutines")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 10, "lines logged by each producer")
	cmd.Flags().BoolVar(&opts.timestamps, "timestamps", false, "prefix each line with the time it was logged")
	cmd.Flags().BoolVar(&opts.zapSummary, "zap-summary", true, "append a zap-encoded summary line through the same sink")
	return cmd
}

func run(opts options, stdout, stderr io.Writer) error {
	cfg := filesink.Config{
		Filename:    opts.file,
		Diagnostics: filesink.NewDiagnostics(stderr),
	}
	if opts.timestamps {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	s, err := filesink.New(cfg)
	if err != nil {
		return errors.Wrap(err, "create sink")
	}
	log := logger.NewBuilder().WithHandler(s).Build()

	var wg sync.WaitGroup
	for id := 0; id < opts.producers; id++ {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			logSomeMessages(log, id, opts.lines)
		}()
	}
	wg.Wait()

	if opts.zapSummary {
		zl := newSinkZapLogger(s)
		zl.Info("producers finished",
			zap.Int("producers", opts.producers),
			zap.Int("lines_each", opts.lines),
		)
		_ = zl.Sync()
	}

	if err := log.Close(); err != nil {
		return errors.Wrap(err, "close sink")
	}

	st := s.Stats()
	fmt.Fprintf(stdout, "wrote %d lines to %s (dropped %d)\n", st.Written, s.Filename(), st.Dropped)
	if err := s.Err(); err != nil {
		// Already reported on stderr by the sink; the run itself succeeded.
		fmt.Fprintf(stdout, "sink stopped early: %v\n", err)
	}
	return nil
}

func logSomeMessages(log *logger.Logger, id, lines int) {
	for i := 0; i < lines; i++ {
		log.Logf("Log entry %d from thread %d", i, id)
	}
}

// newSinkZapLogger returns a zap logger whose output goes through s.
func newSinkZapLogger(s *filesink.Sink) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = ""
	enc := zapcore.NewConsoleEncoder(encCfg)
	return zap.New(zapcore.NewCore(enc, handler.NewLineWriter(s), zapcore.InfoLevel))
}
