package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaguarcode/asynclog/handler/filesink"
	"github.com/jaguarcode/asynclog/logger"
)

// Build a Logger on top of a file sink.
func ExampleNewBuilder() {
	dir, _ := os.MkdirTemp("", "logger")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "log.txt")

	s, err := filesink.New(filesink.Config{Filename: path})
	if err != nil {
		fmt.Println(err)
		return
	}

	log := logger.NewBuilder().
		WithHandler(s).
		WithPrefix("[demo] ").
		Build()

	log.Logf("Log entry %d from thread %d", 0, 1)
	log.With("[child] ").Log("done")
	_ = log.Close()

	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	// Output:
	// [demo] Log entry 0 from thread 1
	// [demo] [child] done
}
